package fief

import (
	"math/rand"
	"sync"
	"time"
)

// Dice is the injectable randomness source for every stochastic rule.
// Implementations must be safe for use by a single goroutine at a time;
// SeededDice additionally locks so independent fiefdoms can share one.
type Dice interface {
	// Roll returns a uniform value in [1, sides].
	Roll(sides int) int
	// Between returns a uniform value in [lo, hi] inclusive.
	Between(lo, hi int) int
	// Chance reports whether a d100 roll lands at or under percent.
	Chance(percent int) bool
	// Index returns a uniform value in [0, n).
	Index(n int) int
	// Shuffle randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

type SeededDice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDice creates a seeded dice. Seed 0 falls back to the wall clock.
func NewDice(seed int64) *SeededDice {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *SeededDice) Roll(sides int) int {
	if sides <= 1 {
		return 1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(sides) + 1
}

func (d *SeededDice) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return lo + d.rng.Intn(hi-lo+1)
}

func (d *SeededDice) Chance(percent int) bool {
	return d.Roll(100) <= percent
}

func (d *SeededDice) Index(n int) int {
	if n <= 1 {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(n)
}

func (d *SeededDice) Shuffle(n int, swap func(i, j int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rng.Shuffle(n, swap)
}
