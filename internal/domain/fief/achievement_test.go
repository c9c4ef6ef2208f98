package fief

import "testing"

func TestAchievement_ThresholdsMet(t *testing.T) {
	stats := AchievementStats{
		Population: 25,
		Treasury:   999,
		Year:       1,
	}

	village, _ := AchievementByID("village")
	if !village.Met(stats) {
		t.Fatal("village should unlock at population 25")
	}

	wealthy, _ := AchievementByID("wealthy")
	if wealthy.Met(stats) {
		t.Fatal("wealthy needs 1000 treasury")
	}

	// Year achievements are strict: still in year 1 means the first
	// anniversary has not passed.
	firstYear, _ := AchievementByID("first_year")
	if firstYear.Met(stats) {
		t.Fatal("first_year must not unlock during year 1")
	}
	stats.Year = 2
	if !firstYear.Met(stats) {
		t.Fatal("first_year should unlock in year 2")
	}
}

func TestAchievement_Rates(t *testing.T) {
	stats := AchievementStats{
		Population: 10,
		Adults:     4,
		Employed:   4,
		Housed:     10,
	}

	full, _ := AchievementByID("full_employment")
	if !full.Met(stats) {
		t.Fatal("all adults employed should unlock full_employment")
	}

	housed, _ := AchievementByID("all_housed")
	if !housed.Met(stats) {
		t.Fatal("all citizens housed should unlock all_housed")
	}

	stats.Housed = 9
	if housed.Met(stats) {
		t.Fatal("90% housing must not unlock all_housed")
	}

	// Zero adults means a zero rate, not a divide-by-zero unlock.
	if full.Met(AchievementStats{Population: 3}) {
		t.Fatal("no adults should not count as full employment")
	}
}

func TestAchievement_MarriedCouples(t *testing.T) {
	matchmaker, _ := AchievementByID("matchmaker")
	if matchmaker.Met(AchievementStats{Married: 9}) {
		t.Fatal("9 married citizens is only 4 couples")
	}
	if !matchmaker.Met(AchievementStats{Married: 10}) {
		t.Fatal("10 married citizens is 5 couples")
	}
}

func TestAchievement_ProgressCapped(t *testing.T) {
	city, _ := AchievementByID("city")
	if got := city.Progress(AchievementStats{Population: 50}); got != 50 {
		t.Fatalf("progress got=%d want=50", got)
	}
	if got := city.Progress(AchievementStats{Population: 500}); got != 100 {
		t.Fatalf("progress got=%d want=100", got)
	}
}

func TestAchievementCatalogUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range AllAchievements() {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %s", a.ID)
		}
		seen[a.ID] = true
	}
	if len(seen) != 20 {
		t.Fatalf("achievement count got=%d want=20", len(seen))
	}
}
