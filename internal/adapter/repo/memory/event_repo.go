package memory

import (
	"context"
	"time"

	"fiefforge/internal/domain/fief"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, ownerID string, events []fief.Event) error {
	for _, e := range events {
		r.store.nextEventID++
		e.ID = r.store.nextEventID
		e.OwnerID = ownerID
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now()
		}
		r.store.events[ownerID] = append(r.store.events[ownerID], e)
	}
	return nil
}

// ListRecent returns the latest events, newest first.
func (r EventRepo) ListRecent(_ context.Context, ownerID string, limit int) ([]fief.Event, error) {
	log := r.store.events[ownerID]
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}
	out := make([]fief.Event, 0, limit)
	for i := len(log) - 1; i >= len(log)-limit; i-- {
		out = append(out, log[i])
	}
	return out, nil
}
