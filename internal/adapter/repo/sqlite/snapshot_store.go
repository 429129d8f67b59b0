package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"worldchronicles/internal/app/ports"
)

func (s *Store) Get(ctx context.Context, playerID, key string) ([]byte, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var payload []byte
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT payload FROM adventure_snapshots WHERE player_id = ? AND save_key = ?`,
		playerID, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return payload, nil
}

func (s *Store) Put(ctx context.Context, playerID, key string, value []byte) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.conn(ctx).ExecContext(ctx, `
INSERT INTO adventure_snapshots (player_id, save_key, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(player_id, save_key) DO UPDATE SET
    payload = excluded.payload,
    updated_at = excluded.updated_at`,
		playerID, key, value, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, playerID, key string) error {
	if err := s.ready(); err != nil {
		return err
	}
	res, err := s.conn(ctx).ExecContext(ctx,
		`DELETE FROM adventure_snapshots WHERE player_id = ? AND save_key = ?`,
		playerID, key,
	)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, playerID, key string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	var count int64
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM adventure_snapshots WHERE player_id = ? AND save_key = ?`,
		playerID, key,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check snapshot: %w", err)
	}
	return count > 0, nil
}
