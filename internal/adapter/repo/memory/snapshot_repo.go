package memory

import (
	"context"

	"fiefforge/internal/app/ports"
)

type SnapshotRepo struct {
	store *Store
}

func NewSnapshotRepo(store *Store) SnapshotRepo {
	return SnapshotRepo{store: store}
}

func (r SnapshotRepo) Record(ctx context.Context, snap ports.DailySnapshot) error {
	exists, _ := r.Has(ctx, snap.OwnerID, snap.Day, snap.Year)
	if exists {
		return nil
	}
	r.store.snapshots[snap.OwnerID] = append(r.store.snapshots[snap.OwnerID], snap)
	return nil
}

func (r SnapshotRepo) Has(_ context.Context, ownerID string, day, year int) (bool, error) {
	for _, s := range r.store.snapshots[ownerID] {
		if s.Day == day && s.Year == year {
			return true, nil
		}
	}
	return false, nil
}

// List returns the latest snapshots, newest first.
func (r SnapshotRepo) List(_ context.Context, ownerID string, limit int) ([]ports.DailySnapshot, error) {
	series := r.store.snapshots[ownerID]
	if limit <= 0 || limit > len(series) {
		limit = len(series)
	}
	out := make([]ports.DailySnapshot, 0, limit)
	for i := len(series) - 1; i >= len(series)-limit; i-- {
		out = append(out, series[i])
	}
	return out, nil
}
