// Package randx provides immutable pseudorandom seed tokens and the pure
// derivation primitives the rest of the library is built on.
//
// 🚀 What is randx?
//
//	A tiny, allocation-light PRNG subsystem centered on one value type:
//	Seed, an opaque 128-bit token. A Seed is never mutated — every
//	derivation (folding in data, splitting into children) returns a new
//	token and leaves the parent untouched, so seeds can be shared freely
//	across goroutines and replayed at will.
//
// ✨ Key features:
//   - Determinism: same token + same inputs ⇒ identical results across
//     platforms and process runs
//   - Fold: mix an integer into a token to derive a per-query child
//   - Split: derive n statistically independent child tokens
//   - TimeBits/FoldTime: bit-exact reinterpretation of a float64 time
//     endpoint, folded into a token without numeric conversion
//   - Normal: seed-determined standard-normal draws (gonum stat/distuv
//     over a math/rand/v2 PCG source)
//
// Goals:
//   - Encapsulation: a single token type; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; pure functions only.
//   - Performance: fold/split are a handful of integer ops; Normal is O(n).
//
// Concurrency:
//   - Seed is an immutable value. Every operation is pure, so concurrent
//     use needs no locking. The transient Sources built inside Normal are
//     never shared.
//
// The mixing function is the SplitMix64 finalizer (Vigna 2014): strong bit
// diffusion, so small changes in inputs produce large, well-distributed
// output changes. This is a hash-like property, not a cryptographic one.
package randx
