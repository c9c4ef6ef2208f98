package memory

import (
	"sync"

	"fiefforge/internal/app/ports"
	"fiefforge/internal/domain/fief"
)

// Store backs every in-memory repository. Writes go through the
// TxManager, which takes the lock for the whole transaction.
type Store struct {
	mu sync.Mutex

	clocks     map[string]fief.Clock
	citizens   map[string]map[int64]fief.Citizen
	businesses map[string]map[int64]fief.Business
	buildings  map[string]map[int64]fief.Building
	areas      map[string]map[int64]fief.Area
	inventory  map[string]map[string]int
	events     map[string][]fief.Event
	unlocks    map[string]map[string]fief.Unlock
	snapshots  map[string][]ports.DailySnapshot

	nextEventID int64
	nextID      map[string]int64
}

func NewStore() *Store {
	return &Store{
		clocks:     make(map[string]fief.Clock),
		citizens:   make(map[string]map[int64]fief.Citizen),
		businesses: make(map[string]map[int64]fief.Business),
		buildings:  make(map[string]map[int64]fief.Building),
		areas:      make(map[string]map[int64]fief.Area),
		inventory:  make(map[string]map[string]int),
		events:     make(map[string][]fief.Event),
		unlocks:    make(map[string]map[string]fief.Unlock),
		snapshots:  make(map[string][]ports.DailySnapshot),
		nextID:     make(map[string]int64),
	}
}

// nextSeq hands out ids per entity kind, mimicking an auto-increment
// column.
func (s *Store) nextSeq(kind string) int64 {
	s.nextID[kind]++
	return s.nextID[kind]
}
