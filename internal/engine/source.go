package engine

import "math/rand"

// Source yields uniform draws in [0, 1). It is the only source of
// non-determinism in the engine: initiative tiebreaks, damage variance and
// AI move choice. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the math/rand top-level generator, which is safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// SourceFunc adapts a function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }
