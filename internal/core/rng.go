package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for
// deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint8Range returns a random uint8 in [lo, hi]. The bounds are
// swapped if given in the wrong order.
func (r *RNG) Uint8Range(lo, hi uint8) uint8 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + uint8(r.r.IntN(int(hi-lo)+1))
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }
