// Package rng provides the seeded linear congruential generator used by the
// snake simulation. Every game session owns its own RNG so that sessions are
// reproducible from their seed and never share random state.
package rng

import "fmt"

// LCG parameters. State stays in [0, Modulus) so the recurrence never overflows.
const (
	Multiplier = 9301
	Increment  = 49297
	Modulus    = 233280
)

// RNG is a deterministic pseudo-random generator.
// It is not safe for concurrent use; each session owns one.
type RNG struct {
	state int64
}

// New creates a generator seeded with seed.
func New(seed int64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the internal state. Any int64 is accepted; it is reduced
// modulo Modulus, which yields the same sequence as the unreduced recurrence.
func (r *RNG) Seed(seed int64) {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}
	r.state = s
}

// State returns the current internal state.
func (r *RNG) State() int64 {
	return r.state
}

// Next advances the state and returns a float in [0, 1).
func (r *RNG) Next() float64 {
	r.state = (r.state*Multiplier + Increment) % Modulus
	return float64(r.state) / Modulus
}

// NextInt returns an integer in [lo, hi] inclusive.
func (r *RNG) NextInt(lo, hi int) int {
	return int(r.Next()*float64(hi-lo+1)) + lo
}

// NextFloat returns a float in [lo, hi).
func (r *RNG) NextFloat(lo, hi float64) float64 {
	return r.Next()*(hi-lo) + lo
}

// Chance reports whether a single draw falls below p.
func (r *RNG) Chance(p float64) bool {
	return r.Next() < p
}

// Choice returns a uniformly chosen element of items.
// It panics if items is empty.
func Choice[T any](r *RNG, items []T) T {
	if len(items) == 0 {
		panic("rng: Choice called with empty slice")
	}
	return items[r.NextInt(0, len(items)-1)]
}

// WeightedChoice returns an element of items with probability proportional to
// its weight. Weights must be positive and match items in length; violating
// that contract panics.
func WeightedChoice[T any](r *RNG, items []T, weights []float64) T {
	if len(items) == 0 {
		panic("rng: WeightedChoice called with empty slice")
	}
	if len(items) != len(weights) {
		panic(fmt.Sprintf("rng: %d items but %d weights", len(items), len(weights)))
	}

	var total float64
	for i, w := range weights {
		if w <= 0 {
			panic(fmt.Sprintf("rng: non-positive weight %v at index %d", w, i))
		}
		total += w
	}

	remaining := r.Next() * total
	for i, w := range weights {
		remaining -= w
		if remaining <= 0 {
			return items[i]
		}
	}

	// Floating point slack
	return items[len(items)-1]
}
