package namegen

import "math/rand/v2"

// Rand is the source of randomness consumed during generation.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n). n > 0.
	IntN(n int) int
}

// NewRand returns a deterministic source for seed. The same seed always
// yields the same sequence of names for a given pattern. The returned value
// is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRand draws from the runtime-seeded top-level generator, which is
// safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
