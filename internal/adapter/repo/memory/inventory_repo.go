package memory

import (
	"context"

	"fiefforge/internal/app/ports"
)

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) InventoryRepo {
	return InventoryRepo{store: store}
}

func (r InventoryRepo) Quantity(_ context.Context, ownerID, goodID string) (int, error) {
	return r.store.inventory[ownerID][goodID], nil
}

func (r InventoryRepo) Add(_ context.Context, ownerID, goodID string, qty int) error {
	if r.store.inventory[ownerID] == nil {
		r.store.inventory[ownerID] = make(map[string]int)
	}
	r.store.inventory[ownerID][goodID] += qty
	return nil
}

func (r InventoryRepo) Remove(_ context.Context, ownerID, goodID string, qty int) error {
	have := r.store.inventory[ownerID][goodID]
	if have < qty {
		return ports.ErrConflict
	}
	r.store.inventory[ownerID][goodID] = have - qty
	return nil
}

func (r InventoryRepo) All(_ context.Context, ownerID string) (map[string]int, error) {
	out := make(map[string]int, len(r.store.inventory[ownerID]))
	for k, v := range r.store.inventory[ownerID] {
		if v > 0 {
			out[k] = v
		}
	}
	return out, nil
}
