package sqlite

import (
	"context"
	"fmt"

	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"
)

func (s *Store) Append(ctx context.Context, playerID string, entries []adventure.JournalEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	conn := s.conn(ctx)
	for _, e := range entries {
		_, err := conn.ExecContext(ctx, `
INSERT INTO journal_entries (id, player_id, kind, story_key, message, occurred_at)
VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, playerID, string(e.Kind), e.StoryKey, e.Message, toMillis(e.OccurredAt),
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("append journal %s: %w", e.ID, ports.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("append journal: %w", err)
		}
	}
	return nil
}

// ListByPlayer returns the newest entries first.
func (s *Store) ListByPlayer(ctx context.Context, playerID string, limit int) ([]adventure.JournalEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	query := `
SELECT id, player_id, kind, story_key, message, occurred_at
FROM journal_entries
WHERE player_id = ?
ORDER BY seq DESC`
	args := []any{playerID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	defer rows.Close()

	out := []adventure.JournalEntry{}
	for rows.Next() {
		var (
			e          adventure.JournalEntry
			kind       string
			occurredAt int64
		)
		if err := rows.Scan(&e.ID, &e.PlayerID, &kind, &e.StoryKey, &e.Message, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan journal: %w", err)
		}
		e.Kind = adventure.JournalKind(kind)
		e.OccurredAt = fromMillis(occurredAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return out, nil
}
