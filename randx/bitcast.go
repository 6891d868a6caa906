package randx

import "math"

// TimeBits reinterprets the underlying bit pattern of a float64 time
// endpoint as an unsigned integer. This is bit punning, not a numeric cast:
// two endpoints with different bit patterns always yield different integers,
// and the same bit pattern always yields the same integer, so folding the
// result into a Seed is deterministic across runs and platforms.
//
// Consequences worth knowing: 0.0 and -0.0 compare equal as floats but have
// different bit patterns, so they derive different keys; NaN payload bits
// are preserved verbatim.
//
// Complexity: O(1).
func TimeBits(t float64) uint64 {
	return math.Float64bits(t)
}

// FoldTime folds a time endpoint into s, low 32 bits first, then high.
// The two-halves order is fixed; it is part of the derivation contract and
// must not change, or previously derived keys would no longer reproduce.
//
// Complexity: O(1).
func FoldTime(s Seed, t float64) Seed {
	bits := TimeBits(t)

	return s.Fold(bits & 0xffffffff).Fold(bits >> 32)
}
