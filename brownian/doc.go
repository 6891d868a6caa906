// Package brownian samples Brownian-motion increments on demand for use
// inside numerical SDE solvers.
//
// 🚀 What is brownian?
//
//	A stateless, queryable replacement for a realized Brownian path. Instead
//	of stepping a stateful process forward, any interval (t0, t1) may be
//	queried directly — in any order, from any goroutine — and the increment
//	is reproduced deterministically from the sampler's seed and the interval
//	endpoints alone. No trajectory is ever materialized or stored.
//
// ✨ Key features:
//   - Path — the minimal capability {T0, T1, Evaluate} shared with richer
//     path implementations, so solvers stay implementation-agnostic
//   - UnsafePath — the independent-per-query sampler: every interval gets
//     a fresh N(0, t1-t0) draw derived from (seed, t0, t1)
//   - Structured outputs — a single array or any nesting of arrays, fixed
//     by a tensor.Descriptor at construction
//   - Bit-for-bit determinism — identical construction and arguments give
//     identical results across runs
//
// ⚠️ The "unsafe" contract:
//
//	UnsafePath ignores the correlation a true Brownian path exhibits between
//	overlapping queries: Evaluate(0, 1) and Evaluate(0, 0.5) are independent
//	samples, not consistent restrictions of one realization. It is only
//	suitable when ALL of the following hold:
//
//	 1. The solver uses a fixed step size (not adaptive), so each disjoint
//	    sub-interval is queried exactly once.
//	 2. No replay or refinement of previously queried intervals is needed.
//	 3. No reverse-mode differentiation through the samples is needed.
//
//	Higher-fidelity implementations (Brownian bridges, Lévy-area
//	constructions) can satisfy the same Path interface when those
//	constraints do not hold.
//
// ⚙️ Usage:
//
//	path, err := brownian.NewUnsafeVector(3, randx.New(42))
//	if err != nil { ... }
//	dW, _ := path.Evaluate(0.0, 0.01, true) // N(0, 0.01) per element
//
// Error handling: a non-floating leaf dtype is a construction error
// (tensor.ErrNonFloatingDtype); a reversed interval (t1 < t0) is NOT an
// error — sqrt of a negative length is NaN, and the NaNs flow through the
// normally-shaped result, matching default floating-point semantics.
package brownian
