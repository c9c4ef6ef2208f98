package achievements

import (
	"context"
	"testing"
	"time"

	"fiefforge/internal/adapter/repo/memory"
	"fiefforge/internal/domain/fief"
)

func newTestTracker() Tracker {
	return Tracker{
		Repo: memory.NewAchievementRepo(memory.NewStore()),
		Now:  func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestEvaluate_UnlocksAndAnnounces(t *testing.T) {
	tr := newTestTracker()
	clk := fief.NewClock("o1")

	events, err := tr.Evaluate(context.Background(), clk, fief.AchievementStats{Population: 30})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	// Population 30 clears first_citizen and village but not town.
	if len(events) != 2 {
		t.Fatalf("got %d unlock events, want 2", len(events))
	}
	for _, e := range events {
		if e.Type != "achievement" {
			t.Fatalf("unexpected event type %q", e.Type)
		}
	}

	for _, want := range []string{"first_citizen", "village"} {
		ok, err := tr.IsUnlocked(context.Background(), "o1", want)
		if err != nil {
			t.Fatalf("is unlocked %s: %v", want, err)
		}
		if !ok {
			t.Fatalf("expected %s unlocked", want)
		}
	}
	if ok, _ := tr.IsUnlocked(context.Background(), "o1", "town"); ok {
		t.Fatal("town should stay locked at population 30")
	}
}

func TestEvaluate_DoesNotReannounce(t *testing.T) {
	tr := newTestTracker()
	clk := fief.NewClock("o1")
	stats := fief.AchievementStats{Population: 1}

	first, err := tr.Evaluate(context.Background(), clk, stats)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected at least one unlock")
	}

	second, err := tr.Evaluate(context.Background(), clk, stats)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected no repeat announcements, got %d", len(second))
	}
}

func TestEvaluate_UnlocksSurviveRegression(t *testing.T) {
	tr := newTestTracker()
	clk := fief.NewClock("o1")

	if _, err := tr.Evaluate(context.Background(), clk, fief.AchievementStats{Population: 25}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// The realm shrinks below the threshold afterwards.
	if _, err := tr.Evaluate(context.Background(), clk, fief.AchievementStats{Population: 3}); err != nil {
		t.Fatalf("evaluate after regression: %v", err)
	}

	ok, err := tr.IsUnlocked(context.Background(), "o1", "village")
	if err != nil {
		t.Fatalf("is unlocked: %v", err)
	}
	if !ok {
		t.Fatal("village should stay unlocked after the population shrinks")
	}
}

func TestListWithStatus_ReportsProgress(t *testing.T) {
	tr := newTestTracker()
	stats := fief.AchievementStats{Population: 10}

	statuses, err := tr.ListWithStatus(context.Background(), "o1", stats)
	if err != nil {
		t.Fatalf("list with status: %v", err)
	}
	if len(statuses) != len(fief.AllAchievements()) {
		t.Fatalf("got %d statuses, want the whole catalog (%d)", len(statuses), len(fief.AllAchievements()))
	}

	var village Status
	for _, s := range statuses {
		if s.ID == "village" {
			village = s
		}
	}
	if village.ID == "" {
		t.Fatal("village missing from catalog")
	}
	if village.Unlocked {
		t.Fatal("village should be locked at population 10")
	}
	if village.Progress != 40 {
		t.Fatalf("progress got=%d want=40 (10 of 25)", village.Progress)
	}
	if village.Requirement != 25 {
		t.Fatalf("requirement got=%d want=25", village.Requirement)
	}
}
