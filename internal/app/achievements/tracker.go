package achievements

import (
	"context"
	"fmt"
	"time"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

// Status pairs a catalog entry with the owner's unlock state and
// progress toward it.
type Status struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	Requirement int64  `json:"requirement"`
}

// Tracker evaluates the achievement catalog against realm stats and
// records new unlocks.
type Tracker struct {
	Repo ports.AchievementRepository
	Now  func() time.Time
}

// Evaluate unlocks every newly met achievement and returns one
// announcement event per unlock. Already unlocked achievements stay
// unlocked even if the stats later regress.
func (t Tracker) Evaluate(ctx context.Context, clk fief.Clock, stats fief.AchievementStats) ([]fief.Event, error) {
	unlocked, err := t.unlockedSet(ctx, clk.OwnerID)
	if err != nil {
		return nil, err
	}

	nowFn := t.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var events []fief.Event
	for _, def := range fief.AllAchievements() {
		if unlocked[def.ID] || !def.Met(stats) {
			continue
		}
		err := t.Repo.Unlock(ctx, fief.Unlock{
			OwnerID:       clk.OwnerID,
			AchievementID: def.ID,
			UnlockedAt:    nowFn(),
		})
		if err != nil {
			return nil, err
		}
		events = append(events, fief.NewEvent(clk, "achievement",
			fmt.Sprintf("Achievement Unlocked: %s - %s", def.Name, def.Description)))
	}

	return events, nil
}

// ListWithStatus reports the whole catalog with unlock state and
// progress for one owner.
func (t Tracker) ListWithStatus(ctx context.Context, ownerID string, stats fief.AchievementStats) ([]Status, error) {
	unlocked, err := t.unlockedSet(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(fief.AllAchievements()))
	for _, def := range fief.AllAchievements() {
		out = append(out, Status{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Category:    def.Category,
			Icon:        def.Icon,
			Unlocked:    unlocked[def.ID],
			Progress:    def.Progress(stats),
			Requirement: def.ReqValue,
		})
	}
	return out, nil
}

// IsUnlocked reports whether the owner holds the named achievement.
func (t Tracker) IsUnlocked(ctx context.Context, ownerID, achievementID string) (bool, error) {
	unlocked, err := t.unlockedSet(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return unlocked[achievementID], nil
}

func (t Tracker) unlockedSet(ctx context.Context, ownerID string) (map[string]bool, error) {
	unlocks, err := t.Repo.ListUnlocked(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		set[u.AchievementID] = true
	}
	return set, nil
}
