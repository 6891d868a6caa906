package randx

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// source builds a deterministic PCG source keyed by the token. Each call
// returns a fresh source positioned at the start of the token's stream, so
// the draw sequence for a given Seed is always the same.
func (s Seed) source() rand.Source {
	return rand.NewPCG(s.hi, s.lo)
}

// Normal returns n independent standard-normal draws fully determined by s.
// Same token, same n ⇒ bit-identical slice, on every platform and run.
// For n <= 0, Normal returns nil.
//
// The draws come from gonum's stat/distuv Normal(0, 1) over the token's PCG
// stream; the receiver is not advanced or otherwise affected.
//
// Complexity: O(n) time, O(n) space (the returned slice).
func Normal(s Seed, n int) []float64 {
	if n <= 0 {
		return nil
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: s.source()}
	draws := make([]float64, n)

	var i int
	for i = 0; i < n; i++ {
		draws[i] = dist.Rand()
	}

	return draws
}
