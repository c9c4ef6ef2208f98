package memory

import (
	"context"
	"sort"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

type CitizenRepo struct {
	store *Store
}

func NewCitizenRepo(store *Store) CitizenRepo {
	return CitizenRepo{store: store}
}

func (r CitizenRepo) GetByID(_ context.Context, ownerID string, id int64) (fief.Citizen, error) {
	c, ok := r.store.citizens[ownerID][id]
	if !ok {
		return fief.Citizen{}, ports.ErrNotFound
	}
	return cloneCitizen(c), nil
}

func (r CitizenRepo) ListAlive(_ context.Context, ownerID string) ([]fief.Citizen, error) {
	var out []fief.Citizen
	for _, c := range r.store.citizens[ownerID] {
		if c.Alive {
			out = append(out, cloneCitizen(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r CitizenRepo) Create(_ context.Context, citizen *fief.Citizen) error {
	if r.store.citizens[citizen.OwnerID] == nil {
		r.store.citizens[citizen.OwnerID] = make(map[int64]fief.Citizen)
	}
	citizen.ID = r.store.nextSeq("citizen")
	r.store.citizens[citizen.OwnerID][citizen.ID] = cloneCitizen(*citizen)
	return nil
}

func (r CitizenRepo) Save(_ context.Context, citizen fief.Citizen) error {
	if _, ok := r.store.citizens[citizen.OwnerID][citizen.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.citizens[citizen.OwnerID][citizen.ID] = cloneCitizen(citizen)
	return nil
}

// cloneCitizen keeps callers from aliasing the stored skills map.
func cloneCitizen(c fief.Citizen) fief.Citizen {
	if c.Skills != nil {
		skills := make(map[string]int, len(c.Skills))
		for k, v := range c.Skills {
			skills[k] = v
		}
		c.Skills = skills
	}
	return c
}
