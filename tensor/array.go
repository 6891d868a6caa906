package tensor

import "fmt"

// Array is a shaped numeric array with dtype-faithful storage: a Float32
// array holds float32 data, so precision matches its declared kind exactly.
// Arrays are write-once — constructed from data, then only read.
type Array struct {
	shape []int
	dtype Dtype
	f64   []float64
	f32   []float32
}

// FromFloat64s builds a Float64 array from data, which must contain exactly
// one element per shape position (a scalar shape takes one element).
// The data slice is copied; the caller keeps ownership of its argument.
func FromFloat64s(shape []int, data []float64) (*Array, error) {
	n, err := elementCount(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: shape %v wants %d elements, got %d", ErrLengthMismatch, shape, n, len(data))
	}

	a := &Array{shape: append([]int(nil), shape...), dtype: Float64}
	a.f64 = append([]float64(nil), data...)

	return a, nil
}

// FromFloat32s builds a Float32 array from data; same contract as
// FromFloat64s at single precision.
func FromFloat32s(shape []int, data []float32) (*Array, error) {
	n, err := elementCount(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: shape %v wants %d elements, got %d", ErrLengthMismatch, shape, n, len(data))
	}

	a := &Array{shape: append([]int(nil), shape...), dtype: Float32}
	a.f32 = append([]float32(nil), data...)

	return a, nil
}

// Shape returns a copy of the array's dimensions. An empty shape is a scalar.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Dtype returns the array's element kind.
func (a *Array) Dtype() Dtype {
	return a.dtype
}

// Len returns the number of elements (the product of the dimensions;
// 1 for a scalar).
func (a *Array) Len() int {
	if a.dtype == Float32 {
		return len(a.f32)
	}

	return len(a.f64)
}

// At returns element i in row-major order, widened to float64 for Float32
// arrays. The widening is exact, so comparisons through At stay bit-faithful.
func (a *Array) At(i int) float64 {
	if a.dtype == Float32 {
		return float64(a.f32[i])
	}

	return a.f64[i]
}

// Float64s returns the backing data of a Float64 array, or nil for other
// kinds. The slice is shared; callers must not mutate it.
func (a *Array) Float64s() []float64 {
	return a.f64
}

// Float32s returns the backing data of a Float32 array, or nil for other
// kinds. The slice is shared; callers must not mutate it.
func (a *Array) Float32s() []float32 {
	return a.f32
}

// Equal reports exact equality: same dtype, same shape, identical elements
// under ==. Arrays containing NaN never compare equal (NaN != NaN).
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dtype != b.dtype || len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	if a.dtype == Float32 {
		for i := range a.f32 {
			if a.f32[i] != b.f32[i] {
				return false
			}
		}

		return true
	}
	for i := range a.f64 {
		if a.f64[i] != b.f64[i] {
			return false
		}
	}

	return true
}

// elementCount returns the product of dims, rejecting negative dimensions.
func elementCount(dims []int) (int, error) {
	n := 1
	for _, d := range dims {
		if d < 0 {
			return 0, fmt.Errorf("%w: got %v", ErrBadShape, dims)
		}
		n *= d
	}

	return n, nil
}
