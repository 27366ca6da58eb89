package platform

import "math/rand/v2"

// SeededRandom is a deterministic Random backed by a PCG source.
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeededRandom creates a Random whose sequence is fully determined by seed.
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Int returns a value in [lo, hi]. Reversed bounds are swapped.
func (r *SeededRandom) Int(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.rng.IntN(hi-lo+1)
}
