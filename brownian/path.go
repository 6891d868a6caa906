package brownian

import "github.com/katalvlaran/wiener/tensor"

// Path is the interval-time capability every Brownian path implementation
// offers to a solver loop: a validity domain and one evaluation operation.
//
// Implementations are expected to be pure: Evaluate must depend only on the
// instance's construction and the call's own arguments, so concurrent
// queries need no coordination.
//
// The left flag requests the left (true) or right (false) limit at the
// queried endpoints. It only matters for implementations with jumps;
// continuous and per-query samplers accept it for compatibility and ignore
// it.
type Path interface {
	// T0 is the left edge of the validity domain (may be -Inf).
	T0() float64

	// T1 is the right edge of the validity domain (may be +Inf).
	T1() float64

	// Evaluate returns the path displacement over (t0, t1) as a structured
	// value matching the implementation's declared output structure.
	Evaluate(t0, t1 float64, left bool) (tensor.Value, error)
}
