package cli

import (
	"context"
	"strings"
	"testing"

	"fiefforge/internal/domain/fief"
)

func TestCategoryMark(t *testing.T) {
	if !strings.Contains(categoryMark(fief.CategoryPositive), "+") {
		t.Fatalf("positive mark missing +: %q", categoryMark(fief.CategoryPositive))
	}
	if !strings.Contains(categoryMark(fief.CategoryNegative), "-") {
		t.Fatalf("negative mark missing -: %q", categoryMark(fief.CategoryNegative))
	}
}

func TestMemoryAppRunsASeason(t *testing.T) {
	app := newMemoryApp(7)
	ctx := context.Background()

	if _, err := app.Engine.Bootstrap(ctx, "cli-test"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	reports, err := app.Engine.AdvanceDays(ctx, "cli-test", fief.DaysPerSeason)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(reports) != fief.DaysPerSeason {
		t.Fatalf("got %d reports, want %d", len(reports), fief.DaysPerSeason)
	}

	d, err := app.Stats.Dashboard(ctx, "cli-test")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Season != "Summer" || d.DayInSeason != 1 {
		t.Fatalf("calendar = %s day %d, want Summer day 1", d.Season, d.DayInSeason)
	}
}
