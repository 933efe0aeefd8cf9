package game

import "math/rand"

// Rand is the randomness source used by the spawners.
type Rand interface {
	// Range returns a uniform float in [lo, hi). It returns lo when hi <= lo.
	Range(lo, hi float64) float64
	// Seed resets the generator to a deterministic sequence.
	Seed(seed int64)
}

type mathRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand with the given seed.
func NewRand(seed int64) Rand {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Float64()*(hi-lo)
}

func (m *mathRand) Seed(seed int64) {
	m.r = rand.New(rand.NewSource(seed))
}
