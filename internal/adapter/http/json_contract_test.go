package httpadapter

import (
	"encoding/json"
	"testing"

	"fiefforge/internal/app/engine"
	"fiefforge/internal/app/stats"
	"fiefforge/internal/domain/fief"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	report := engine.DayReport{
		Day:      45,
		Year:     2,
		Season:   "Spring",
		Treasury: 1200,
		Births:   1,
		Deaths:   0,
		Events: []fief.Event{{
			Type:     "festival",
			Message:  "A festival!",
			Category: fief.CategoryPositive,
			Day:      45,
			Year:     2,
		}},
	}

	b, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"day", "year", "season", "treasury", "births", "deaths", "events"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %s", key, b)
		}
	}

	dash := stats.Dashboard{
		Day:    45,
		Season: "Spring",
		Population: stats.PopulationStats{
			Total:        10,
			AvgHappiness: 60,
		},
	}
	b, err = json.Marshal(dash)
	if err != nil {
		t.Fatalf("marshal dashboard: %v", err)
	}
	m = nil
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal dashboard: %v", err)
	}
	for _, key := range []string{"day_in_season", "population", "recent_events", "inventory"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %s", key, b)
		}
	}
	pop, ok := m["population"].(map[string]any)
	if !ok {
		t.Fatalf("population not an object: %s", b)
	}
	if _, ok := pop["avg_happiness"]; !ok {
		t.Fatalf("missing avg_happiness in %s", b)
	}
}
