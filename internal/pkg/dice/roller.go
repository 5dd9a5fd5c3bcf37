package dice

import "math/rand/v2"

// New returns a Roller backed by the process-wide randomness source
func New() Roller {
	return &roller{intn: rand.IntN}
}

// NewSeeded returns a deterministic Roller for tests
func NewSeeded(seed uint64) Roller {
	src := rand.New(rand.NewPCG(seed, seed))
	return &roller{intn: src.IntN}
}
