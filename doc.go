// Package wiener is a queryable, stateless toolkit for sampling Brownian
// (Wiener-process) increments inside numerical SDE solvers.
//
// 🚀 What is wiener?
//
//	A library that replaces the usual sequential, stateful Brownian path with
//	an on-demand, purely functional sampler: any interval (t0, t1) may be
//	queried in any order — forwards, backwards, or in parallel — and always
//	reproduces the same increment for the same seed and endpoints, without
//	ever materializing a trajectory.
//
// ✨ Key features:
//   - Deterministic: same seed + same endpoints ⇒ bit-identical samples
//   - Stateless: no hidden generators, no mutation, no locks
//   - Structured outputs: single arrays or nested records/lists of arrays
//   - Correct variance: every increment is N(0, t1-t0) per element
//   - Pluggable: one small Path capability shared with richer implementations
//
// Under the hood, everything is organized under three subpackages:
//
//	randx/    — immutable seed tokens: fold, split, seeded normal draws
//	tensor/   — dtypes, shaped arrays, structured shape descriptors
//	brownian/ — the Path capability and the UnsafePath sampler
//
// Quick sketch:
//
//	path, _ := brownian.NewUnsafeVector(3, randx.New(42))
//	dW, _ := path.Evaluate(0.0, 0.01, true) // one increment over [0, 0.01]
//
// The "unsafe" sampler draws a fresh normal variable for every queried
// interval, ignoring the correlation a true Brownian path exhibits between
// overlapping queries. That is exactly right for fixed-step solvers that
// visit each sub-interval once, and exactly wrong for adaptive solvers —
// see brownian's package documentation for the full contract.
//
// See examples/ for fixed-step Euler–Maruyama demos, and each package's
// example_test.go for runnable snippets.
//
//	go get github.com/katalvlaran/wiener
package wiener
