package inmemory

import "sync"

type Snapshot struct {
	TickTotal         uint64            `json:"tick_total"`
	TickMillisTotal   uint64            `json:"tick_millis_total"`
	EventTotal        uint64            `json:"event_total"`
	DeathTotal        uint64            `json:"death_total"`
	BirthTotal        uint64            `json:"birth_total"`
	TicksByOwner      map[string]uint64 `json:"ticks_by_owner"`
	AvgTickMillis     float64           `json:"avg_tick_millis"`
	SlowestTickMillis uint64            `json:"slowest_tick_millis"`
}

// Recorder accumulates simulation counters for the KPI endpoint.
type Recorder struct {
	mu           sync.Mutex
	ticks        uint64
	tickMillis   uint64
	slowestTick  uint64
	events       uint64
	deaths       uint64
	births       uint64
	ticksByOwner map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		ticksByOwner: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick(ownerID string, durationMillis int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.ticksByOwner[ownerID]++
	if durationMillis > 0 {
		r.tickMillis += uint64(durationMillis)
		if uint64(durationMillis) > r.slowestTick {
			r.slowestTick = uint64(durationMillis)
		}
	}
}

func (r *Recorder) RecordEvents(_ string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if count > 0 {
		r.events += uint64(count)
	}
}

func (r *Recorder) RecordDeaths(_ string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if count > 0 {
		r.deaths += uint64(count)
	}
}

func (r *Recorder) RecordBirths(_ string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if count > 0 {
		r.births += uint64(count)
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TickTotal:         r.ticks,
		TickMillisTotal:   r.tickMillis,
		EventTotal:        r.events,
		DeathTotal:        r.deaths,
		BirthTotal:        r.births,
		SlowestTickMillis: r.slowestTick,
		TicksByOwner:      make(map[string]uint64, len(r.ticksByOwner)),
	}
	for k, v := range r.ticksByOwner {
		out.TicksByOwner[k] = v
	}
	if r.ticks > 0 {
		out.AvgTickMillis = float64(r.tickMillis) / float64(r.ticks)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
