package inmemory

import "testing"

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordTick("lord-1", 12)
	r.RecordTick("lord-1", 8)
	r.RecordTick("lord-2", 20)
	r.RecordEvents("lord-1", 5)
	r.RecordDeaths("lord-1", 1)
	r.RecordBirths("lord-2", 2)

	s := r.Snapshot()
	if s.TickTotal != 3 {
		t.Fatalf("expected 3 ticks, got %d", s.TickTotal)
	}
	if s.TickMillisTotal != 40 {
		t.Fatalf("expected 40 millis total, got %d", s.TickMillisTotal)
	}
	if s.SlowestTickMillis != 20 {
		t.Fatalf("expected slowest 20, got %d", s.SlowestTickMillis)
	}
	if s.TicksByOwner["lord-1"] != 2 {
		t.Fatalf("expected 2 ticks for lord-1, got %d", s.TicksByOwner["lord-1"])
	}
	if s.EventTotal != 5 || s.DeathTotal != 1 || s.BirthTotal != 2 {
		t.Fatalf("unexpected counters: %+v", s)
	}
}

func TestRecorderIgnoresNegativeCounts(t *testing.T) {
	r := NewRecorder()
	r.RecordEvents("lord-1", -3)
	r.RecordTick("lord-1", -5)

	s := r.Snapshot()
	if s.EventTotal != 0 {
		t.Fatalf("expected 0 events, got %d", s.EventTotal)
	}
	if s.TickMillisTotal != 0 {
		t.Fatalf("expected 0 millis, got %d", s.TickMillisTotal)
	}
}
