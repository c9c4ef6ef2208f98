package fief

import "testing"

func TestDrawRandomEvent_RespectsSeasons(t *testing.T) {
	dice := NewDice(42)
	for i := 0; i < 200; i++ {
		def, ok := DrawRandomEvent(dice, "Winter")
		if !ok {
			t.Fatal("winter draw returned no event")
		}
		if !def.EligibleIn("Winter") {
			t.Fatalf("drew %s which is not eligible in Winter", def.ID)
		}
	}
}

func TestDrawRandomEvent_WeightedDistribution(t *testing.T) {
	// With a large sample, heavier events must come up more often.
	dice := NewDice(7)
	counts := map[string]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		def, ok := DrawRandomEvent(dice, "Summer")
		if !ok {
			t.Fatal("summer draw returned no event")
		}
		counts[def.ID]++
	}

	// market_day (20) vs royal_favor (3): expect roughly 6.7x, allow
	// generous slack.
	if counts["market_day"] < counts["royal_favor"]*3 {
		t.Fatalf("weighting off: market_day=%d royal_favor=%d", counts["market_day"], counts["royal_favor"])
	}
	if counts["bountiful_harvest"] != 0 {
		t.Fatalf("autumn-only event drawn in summer %d times", counts["bountiful_harvest"])
	}
}

func TestRandomEventByID(t *testing.T) {
	def, ok := RandomEventByID("comet_sighting")
	if !ok || def.Category != CategorySpecial || def.Weight != 2 {
		t.Fatalf("comet_sighting lookup got=%+v ok=%v", def, ok)
	}
	if _, ok := RandomEventByID("dragon_attack"); ok {
		t.Fatal("unknown event id should not resolve")
	}
}

func TestEventCategoryDefaultsNeutral(t *testing.T) {
	if got := EventCategory("festival"); got != CategoryPositive {
		t.Fatalf("festival category got=%s", got)
	}
	if got := EventCategory("unheard_of"); got != CategoryNeutral {
		t.Fatalf("unknown category got=%s want=%s", got, CategoryNeutral)
	}
}

func TestEventTableCoversAllSeasonsAndCategories(t *testing.T) {
	for _, season := range Seasons {
		total := 0
		for _, d := range AllRandomEvents() {
			if d.EligibleIn(season) {
				total += d.Weight
			}
		}
		if total == 0 {
			t.Fatalf("no eligible events in %s", season)
		}
	}
}
