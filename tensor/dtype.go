package tensor

// Dtype identifies the element kind of an array leaf.
//
//   - Float64 — the default floating kind; used when no dtype is declared.
//   - Float32 — single-precision floating kind.
//   - Int64, Int32, Bool — non-floating kinds. They exist so descriptors can
//     declare them and be rejected at construction: sampled outputs must be
//     floating-point.
type Dtype int

const (
	// Float64 is the default floating-point element kind.
	Float64 Dtype = iota

	// Float32 is the single-precision floating-point element kind.
	Float32

	// Int64 is a non-floating element kind (rejected for sampled leaves).
	Int64

	// Int32 is a non-floating element kind (rejected for sampled leaves).
	Int32

	// Bool is a non-floating element kind (rejected for sampled leaves).
	Bool
)

// IsFloating reports whether d is a floating-point kind.
func (d Dtype) IsFloating() bool {
	return d == Float64 || d == Float32
}

// String returns the conventional lowercase name of the kind.
func (d Dtype) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}
