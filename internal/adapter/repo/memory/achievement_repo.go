package memory

import (
	"context"
	"sort"

	"fiefforge/internal/domain/fief"
)

type AchievementRepo struct {
	store *Store
}

func NewAchievementRepo(store *Store) AchievementRepo {
	return AchievementRepo{store: store}
}

func (r AchievementRepo) ListUnlocked(_ context.Context, ownerID string) ([]fief.Unlock, error) {
	var out []fief.Unlock
	for _, u := range r.store.unlocks[ownerID] {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt.Before(out[j].UnlockedAt) })
	return out, nil
}

func (r AchievementRepo) Unlock(_ context.Context, unlock fief.Unlock) error {
	if r.store.unlocks[unlock.OwnerID] == nil {
		r.store.unlocks[unlock.OwnerID] = make(map[string]fief.Unlock)
	}
	// Already unlocked stays at its original timestamp.
	if _, exists := r.store.unlocks[unlock.OwnerID][unlock.AchievementID]; exists {
		return nil
	}
	r.store.unlocks[unlock.OwnerID][unlock.AchievementID] = unlock
	return nil
}
