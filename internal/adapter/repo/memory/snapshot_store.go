package memory

import (
	"context"

	"worldchronicles/internal/app/ports"
)

type SnapshotStore struct {
	store *Store
}

func NewSnapshotStore(store *Store) SnapshotStore {
	return SnapshotStore{store: store}
}

func (r SnapshotStore) Get(ctx context.Context, playerID, key string) ([]byte, error) {
	var (
		out []byte
		ok  bool
	)
	r.store.read(ctx, func() {
		var v []byte
		v, ok = r.store.snapshots[snapshotKey(playerID, key)]
		out = append([]byte(nil), v...)
	})
	if !ok {
		return nil, ports.ErrNotFound
	}
	return out, nil
}

func (r SnapshotStore) Put(ctx context.Context, playerID, key string, value []byte) error {
	r.store.write(ctx, func() {
		r.store.snapshots[snapshotKey(playerID, key)] = append([]byte(nil), value...)
	})
	return nil
}

func (r SnapshotStore) Delete(ctx context.Context, playerID, key string) error {
	var ok bool
	r.store.write(ctx, func() {
		k := snapshotKey(playerID, key)
		_, ok = r.store.snapshots[k]
		delete(r.store.snapshots, k)
	})
	if !ok {
		return ports.ErrNotFound
	}
	return nil
}

func (r SnapshotStore) Exists(ctx context.Context, playerID, key string) (bool, error) {
	var ok bool
	r.store.read(ctx, func() {
		_, ok = r.store.snapshots[snapshotKey(playerID, key)]
	})
	return ok, nil
}
