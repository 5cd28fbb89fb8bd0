package random

import (
	"math/rand/v2"
	"time"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// PCGRandom implements Random with a seedable PCG generator. Seeded
// instances replay the same draw sequence, which keeps simulated games
// reproducible. Instances are not safe for concurrent use; give each
// worker its own.
type PCGRandom struct {
	rng *rand.Rand
}

// New creates a time-seeded PCGRandom
func New() *PCGRandom {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded creates a PCGRandom with a fixed seed
func NewSeeded(seed uint64) *PCGRandom {
	return &PCGRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a random int in [0, n), or 0 when n is not positive
func (r *PCGRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}
