package brownian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wiener/randx"
	"github.com/katalvlaran/wiener/tensor"
)

// UnsafePath samples one independent Brownian increment per queried
// interval.
//
// Both fields are fixed at construction and never mutated, so a single
// instance may be queried from any number of goroutines without locking.
// Two instances built with different seeds are independent even when
// queried with identical endpoints.
type UnsafePath struct {
	desc tensor.Descriptor
	seed randx.Seed
}

// compile-time conformance to the Path capability.
var _ Path = (*UnsafePath)(nil)

// NewUnsafePath builds a sampler producing values shaped exactly like desc.
// The descriptor is validated here, before any query can be issued: every
// leaf must declare a floating-point dtype, otherwise the returned error
// wraps tensor.ErrNonFloatingDtype and names the offending leaf.
func NewUnsafePath(desc tensor.Descriptor, seed randx.Seed) (*UnsafePath, error) {
	if err := tensor.Validate(desc); err != nil {
		return nil, fmt.Errorf("brownian: %w", err)
	}

	return &UnsafePath{desc: desc, seed: seed}, nil
}

// NewUnsafeVector builds a sampler for a single length-n vector with the
// default floating-point dtype — the common single-array case.
func NewUnsafeVector(n int, seed randx.Seed) (*UnsafePath, error) {
	return NewUnsafePath(tensor.NewLeaf(n), seed)
}

// T0 returns -Inf: queries are self-contained, so the sampler imposes no
// lower time bound.
func (p *UnsafePath) T0() float64 {
	return math.Inf(-1)
}

// T1 returns +Inf; see T0.
func (p *UnsafePath) T1() float64 {
	return math.Inf(1)
}

// Evaluate samples the Brownian increment over (t0, t1).
//
// Derivation: the interval endpoints are bit-reinterpreted and folded into
// the sampler's seed (t0 first, then t1), the per-query key is split into
// one independent sub-key per leaf in canonical walk order, and each leaf
// draws a standard normal of its shape scaled by sqrt(t1-t0) at the leaf's
// dtype. The result mirrors the descriptor exactly.
//
// Identical (t0, t1) always reproduce the identical value, bit for bit.
// Overlapping intervals yield independent samples — see the package
// documentation for when that is acceptable.
//
// If t1 < t0, sqrt(t1-t0) is NaN and every element of the result is NaN;
// this is deliberate, documented behavior rather than an error. The left
// flag is accepted for Path compatibility and has no effect.
func (p *UnsafePath) Evaluate(t0, t1 float64, left bool) (tensor.Value, error) {
	_ = left
	if p == nil || p.desc == nil {
		return nil, ErrNotConstructed
	}

	key := randx.FoldTime(randx.FoldTime(p.seed, t0), t1)
	subs := key.Split(tensor.NumLeaves(p.desc))

	return tensor.Build(p.desc, func(i int, _ string, l tensor.Leaf) (*tensor.Array, error) {
		return sampleLeaf(subs[i], l, t0, t1)
	})
}

// EvaluateAt is the single-endpoint form: the Brownian position at time t
// referenced from an implicit origin, i.e. Evaluate(0, t, left).
func (p *UnsafePath) EvaluateAt(t float64, left bool) (tensor.Value, error) {
	return p.Evaluate(0, t, left)
}

// sampleLeaf draws one standard-normal array for the leaf from sub and
// rescales it by sqrt(t1-t0) cast to the leaf's dtype. Pure: same sub-key,
// leaf and endpoints always produce the same array.
func sampleLeaf(sub randx.Seed, l tensor.Leaf, t0, t1 float64) (*tensor.Array, error) {
	draws := randx.Normal(sub, l.NumElements())

	if l.Dtype == tensor.Float32 {
		w := float32(math.Sqrt(t1 - t0))
		data := make([]float32, len(draws))
		for i, d := range draws {
			data[i] = float32(d) * w
		}

		return tensor.FromFloat32s(l.Shape, data)
	}

	w := math.Sqrt(t1 - t0)
	data := make([]float64, len(draws))
	for i, d := range draws {
		data[i] = d * w
	}

	return tensor.FromFloat64s(l.Shape, data)
}
