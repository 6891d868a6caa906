package randx

import "fmt"

// golden is the SplitMix64 increment (the 64-bit golden ratio).
// The value is canonical; see Vigna 2014 for the constants and rationale.
const golden = 0x9e3779b97f4a7c15

// splitStream decorrelates Split children from plain Fold derivations,
// so Split(n)[i] never coincides with Fold(uint64(i)) on the same parent.
const splitStream = 0xd1342543de82ef95

// mix64 applies the SplitMix64 finalizer: a full-avalanche bijection on
// 64-bit integers. Every derivation below bottoms out here.
//
// Complexity: O(1).
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Seed is an opaque, immutable 128-bit pseudorandom token.
//
// A Seed is a value, not a generator: it has no internal position and is
// never advanced. Derivations (Fold, Split, FoldTime) return new tokens and
// leave the receiver unchanged. Two Seeds constructed from different inputs
// parameterize statistically independent sampling streams.
//
// The zero Seed is valid and deterministic: it names one fixed stream, the
// same on every run. Callers who want distinct streams should construct
// tokens with New.
type Seed struct {
	hi uint64
	lo uint64
}

// New expands a caller-chosen integer into a well-mixed Seed.
// Identical inputs yield identical tokens on every platform.
//
// Complexity: O(1).
func New(n uint64) Seed {
	return Seed{
		hi: mix64(n + golden),
		lo: mix64(n + golden + golden),
	}
}

// Fold derives a new Seed by mixing v into s. The receiver is unchanged.
//
// Folding is the primitive behind per-query key derivation: identical
// (s, v) pairs always produce the identical child, while distinct v values
// produce (with high probability) unrelated children.
//
// Complexity: O(1).
func (s Seed) Fold(v uint64) Seed {
	m := mix64(v + golden)

	return Seed{
		hi: mix64(s.hi ^ m),
		lo: mix64(s.lo + m + golden),
	}
}

// Split derives n statistically independent child Seeds from s.
// The receiver is unchanged; calling Split twice yields the same children.
// For n <= 0, Split returns nil.
//
// Complexity: O(n) time, O(n) space (the returned slice).
func (s Seed) Split(n int) []Seed {
	if n <= 0 {
		return nil
	}
	children := make([]Seed, n)

	var i int
	for i = 0; i < n; i++ {
		children[i] = s.Fold(splitStream ^ uint64(i))
	}

	return children
}

// String renders the token in hex for debugging. The representation is not
// part of any stability contract.
func (s Seed) String() string {
	return fmt.Sprintf("randx.Seed(%016x%016x)", s.hi, s.lo)
}
