package engine

import "math/rand"

// Rand is the slice of math/rand the engine draws from. Production callers use
// SystemRand; tests pass a seeded *rand.Rand to make scoring and event
// detection deterministic.
type Rand interface {
	Float64() float64
}

// SystemRand returns a Rand backed by math/rand's shared locked source, safe
// for concurrent request handlers.
func SystemRand() Rand { return systemRand{} }

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
