package memory

import (
	"context"
	"sync"

	"worldchronicles/internal/domain/adventure"
)

// Store backs the in-memory repos. TxManager holds the write lock for the
// whole transaction; repo calls made inside it do not lock again.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	journal   map[string][]adventure.JournalEntry
}

func NewStore() *Store {
	return &Store{
		snapshots: make(map[string][]byte),
		journal:   make(map[string][]adventure.JournalEntry),
	}
}

func snapshotKey(playerID, key string) string {
	return playerID + "::" + key
}

type txKeyType struct{}

var txKey = txKeyType{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey).(bool)
	return v
}

func (s *Store) read(ctx context.Context, fn func()) {
	if !inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if !inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}
