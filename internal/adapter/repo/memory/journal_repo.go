package memory

import (
	"context"

	"worldchronicles/internal/domain/adventure"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(ctx context.Context, playerID string, entries []adventure.JournalEntry) error {
	r.store.write(ctx, func() {
		for _, e := range entries {
			e.PlayerID = playerID
			r.store.journal[playerID] = append(r.store.journal[playerID], e)
		}
	})
	return nil
}

// ListByPlayer returns the newest entries first.
func (r JournalRepo) ListByPlayer(ctx context.Context, playerID string, limit int) ([]adventure.JournalEntry, error) {
	var out []adventure.JournalEntry
	r.store.read(ctx, func() {
		all := r.store.journal[playerID]
		n := len(all)
		if limit > 0 && limit < n {
			n = limit
		}
		out = make([]adventure.JournalEntry, 0, n)
		for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, all[i])
		}
	})
	return out, nil
}
