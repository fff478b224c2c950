package pong

import "math/rand"

// Rand is the randomness source used for serves and bounce jitter.
type Rand interface {
	// IntRange returns a uniformly distributed integer in [min, max].
	IntRange(min, max int) int
}

// seededRand implements Rand on a seeded math/rand generator.
type seededRand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) Rand {
	return seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s seededRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
