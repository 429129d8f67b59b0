package ports

import (
	"context"

	"worldchronicles/internal/domain/adventure"
)

// SnapshotStore is a durable key-value store scoped by player.
type SnapshotStore interface {
	Get(ctx context.Context, playerID, key string) ([]byte, error)
	Put(ctx context.Context, playerID, key string, value []byte) error
	Delete(ctx context.Context, playerID, key string) error
	Exists(ctx context.Context, playerID, key string) (bool, error)
}

type JournalRepository interface {
	Append(ctx context.Context, playerID string, entries []adventure.JournalEntry) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]adventure.JournalEntry, error)
}
