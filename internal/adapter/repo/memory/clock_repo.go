package memory

import (
	"context"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

type ClockRepo struct {
	store *Store
}

func NewClockRepo(store *Store) ClockRepo {
	return ClockRepo{store: store}
}

func (r ClockRepo) GetByOwnerID(_ context.Context, ownerID string) (fief.Clock, error) {
	clock, ok := r.store.clocks[ownerID]
	if !ok {
		return fief.Clock{}, ports.ErrNotFound
	}
	return clock, nil
}

func (r ClockRepo) Create(_ context.Context, clock fief.Clock) error {
	if _, exists := r.store.clocks[clock.OwnerID]; exists {
		return ports.ErrConflict
	}
	r.store.clocks[clock.OwnerID] = clock
	return nil
}

func (r ClockRepo) SaveWithVersion(_ context.Context, clock fief.Clock, expectedVersion int64) error {
	current, ok := r.store.clocks[clock.OwnerID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	clock.Version = expectedVersion + 1
	r.store.clocks[clock.OwnerID] = clock
	return nil
}
