package memory

import (
	"context"
	"sort"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

type BusinessRepo struct {
	store *Store
}

func NewBusinessRepo(store *Store) BusinessRepo {
	return BusinessRepo{store: store}
}

func (r BusinessRepo) GetByID(_ context.Context, ownerID string, id int64) (fief.Business, error) {
	b, ok := r.store.businesses[ownerID][id]
	if !ok {
		return fief.Business{}, ports.ErrNotFound
	}
	return b, nil
}

func (r BusinessRepo) List(_ context.Context, ownerID string) ([]fief.Business, error) {
	var out []fief.Business
	for _, b := range r.store.businesses[ownerID] {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r BusinessRepo) Create(_ context.Context, business *fief.Business) error {
	if r.store.businesses[business.OwnerID] == nil {
		r.store.businesses[business.OwnerID] = make(map[int64]fief.Business)
	}
	business.ID = r.store.nextSeq("business")
	r.store.businesses[business.OwnerID][business.ID] = *business
	return nil
}

func (r BusinessRepo) Save(_ context.Context, business fief.Business) error {
	if _, ok := r.store.businesses[business.OwnerID][business.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.businesses[business.OwnerID][business.ID] = business
	return nil
}

type BuildingRepo struct {
	store *Store
}

func NewBuildingRepo(store *Store) BuildingRepo {
	return BuildingRepo{store: store}
}

func (r BuildingRepo) GetByID(_ context.Context, ownerID string, id int64) (fief.Building, error) {
	b, ok := r.store.buildings[ownerID][id]
	if !ok {
		return fief.Building{}, ports.ErrNotFound
	}
	return b, nil
}

func (r BuildingRepo) List(_ context.Context, ownerID string) ([]fief.Building, error) {
	var out []fief.Building
	for _, b := range r.store.buildings[ownerID] {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r BuildingRepo) ListByArea(ctx context.Context, ownerID string, areaID int64) ([]fief.Building, error) {
	all, _ := r.List(ctx, ownerID)
	var out []fief.Building
	for _, b := range all {
		if b.AreaID == areaID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r BuildingRepo) Create(_ context.Context, building *fief.Building) error {
	if r.store.buildings[building.OwnerID] == nil {
		r.store.buildings[building.OwnerID] = make(map[int64]fief.Building)
	}
	building.ID = r.store.nextSeq("building")
	r.store.buildings[building.OwnerID][building.ID] = *building
	return nil
}

func (r BuildingRepo) Save(_ context.Context, building fief.Building) error {
	if _, ok := r.store.buildings[building.OwnerID][building.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.buildings[building.OwnerID][building.ID] = building
	return nil
}

type AreaRepo struct {
	store *Store
}

func NewAreaRepo(store *Store) AreaRepo {
	return AreaRepo{store: store}
}

func (r AreaRepo) GetByID(_ context.Context, ownerID string, id int64) (fief.Area, error) {
	a, ok := r.store.areas[ownerID][id]
	if !ok {
		return fief.Area{}, ports.ErrNotFound
	}
	return a, nil
}

func (r AreaRepo) List(_ context.Context, ownerID string) ([]fief.Area, error) {
	var out []fief.Area
	for _, a := range r.store.areas[ownerID] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r AreaRepo) Create(_ context.Context, area *fief.Area) error {
	if r.store.areas[area.OwnerID] == nil {
		r.store.areas[area.OwnerID] = make(map[int64]fief.Area)
	}
	area.ID = r.store.nextSeq("area")
	r.store.areas[area.OwnerID][area.ID] = *area
	return nil
}

func (r AreaRepo) Save(_ context.Context, area fief.Area) error {
	if _, ok := r.store.areas[area.OwnerID][area.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.areas[area.OwnerID][area.ID] = area
	return nil
}
