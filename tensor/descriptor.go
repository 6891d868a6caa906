package tensor

import (
	"sort"
	"strconv"
)

// Descriptor describes the structure of a value before any data exists.
// It is a tagged variant with exactly three cases:
//
//   - Leaf   — one array: a (shape, dtype) pair.
//   - List   — an ordered sequence of sub-descriptors.
//   - Record — a keyed collection of sub-descriptors.
//
// Descriptors are purely structural and are treated as immutable once built.
type Descriptor interface {
	isDescriptor()
}

// Leaf declares a single array: its dimensions and element kind.
// The zero Dtype is Float64, so Leaf{Shape: ...} declares a
// default-floating-point array.
type Leaf struct {
	Shape []int
	Dtype Dtype
}

// NewLeaf declares an array of the given dimensions with the default
// floating-point dtype. NewLeaf() declares a scalar.
func NewLeaf(dims ...int) Leaf {
	return Leaf{Shape: dims, Dtype: Float64}
}

// WithDtype returns a copy of l with the element kind replaced.
func (l Leaf) WithDtype(d Dtype) Leaf {
	l.Dtype = d

	return l
}

// NumElements returns the number of elements the leaf declares
// (1 for a scalar). Negative dimensions count as zero elements;
// Validate rejects them before this matters.
func (l Leaf) NumElements() int {
	n, err := elementCount(l.Shape)
	if err != nil {
		return 0
	}

	return n
}

// List is an ordered sequence of sub-descriptors.
type List []Descriptor

// Record is a keyed collection of sub-descriptors. Traversal always visits
// keys in sorted order, so map iteration nondeterminism never leaks into
// any derived computation.
type Record map[string]Descriptor

func (Leaf) isDescriptor()   {}
func (List) isDescriptor()   {}
func (Record) isDescriptor() {}

// Value is a structured numeric value: the data-bearing mirror of a
// Descriptor, with the same three cases.
//
//   - *Array      — mirrors Leaf.
//   - ValueList   — mirrors List.
//   - ValueRecord — mirrors Record.
type Value interface {
	isValue()
}

// ValueList is an ordered sequence of sub-values, mirroring a List.
type ValueList []Value

// ValueRecord is a keyed collection of sub-values, mirroring a Record.
type ValueRecord map[string]Value

func (*Array) isValue()      {}
func (ValueList) isValue()   {}
func (ValueRecord) isValue() {}

// Walk visits every leaf of d in canonical order — lists by index, records
// by sorted key — calling fn with the leaf's path (for messages) and the
// leaf itself. Traversal stops at the first error, which is returned.
//
// The canonical order is structural and content-independent: the same
// descriptor always yields the same visit sequence.
func Walk(d Descriptor, fn func(path string, l Leaf) error) error {
	return walk("$", d, fn)
}

func walk(path string, d Descriptor, fn func(path string, l Leaf) error) error {
	switch node := d.(type) {
	case Leaf:
		return fn(path, node)
	case List:
		for i, sub := range node {
			if err := walk(path+"["+strconv.Itoa(i)+"]", sub, fn); err != nil {
				return err
			}
		}

		return nil
	case Record:
		for _, key := range sortedKeys(node) {
			if err := walk(path+"."+key, node[key], fn); err != nil {
				return err
			}
		}

		return nil
	case nil:
		return wrapPath(path, ErrNilDescriptor)
	default:
		// Unreachable for descriptors built from this package's variants.
		return wrapPath(path, ErrNilDescriptor)
	}
}

// NumLeaves returns the number of leaves in d. Invalid subtrees count as
// zero; Validate reports them properly.
func NumLeaves(d Descriptor) int {
	n := 0
	_ = Walk(d, func(string, Leaf) error {
		n++

		return nil
	})

	return n
}

// Build constructs a Value isomorphic to d by calling fn once per leaf in
// canonical order. fn receives the leaf's ordinal position in that order
// (0-based), its path, and the leaf descriptor; the returned arrays are
// reassembled into d's exact structure.
func Build(d Descriptor, fn func(i int, path string, l Leaf) (*Array, error)) (Value, error) {
	next := 0

	return build("$", d, &next, fn)
}

func build(path string, d Descriptor, next *int, fn func(i int, path string, l Leaf) (*Array, error)) (Value, error) {
	switch node := d.(type) {
	case Leaf:
		i := *next
		*next++

		return fn(i, path, node)
	case List:
		out := make(ValueList, len(node))
		for i, sub := range node {
			v, err := build(path+"["+strconv.Itoa(i)+"]", sub, next, fn)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	case Record:
		out := make(ValueRecord, len(node))
		for _, key := range sortedKeys(node) {
			v, err := build(path+"."+key, node[key], next, fn)
			if err != nil {
				return nil, err
			}
			out[key] = v
		}

		return out, nil
	case nil:
		return nil, wrapPath(path, ErrNilDescriptor)
	default:
		return nil, wrapPath(path, ErrNilDescriptor)
	}
}

// EqualValue reports exact structural and numeric equality of two values.
// Values containing NaN never compare equal (NaN != NaN).
func EqualValue(a, b Value) bool {
	switch va := a.(type) {
	case *Array:
		vb, ok := b.(*Array)

		return ok && va.Equal(vb)
	case ValueList:
		vb, ok := b.(ValueList)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !EqualValue(va[i], vb[i]) {
				return false
			}
		}

		return true
	case ValueRecord:
		vb, ok := b.(ValueRecord)
		if !ok || len(va) != len(vb) {
			return false
		}
		for key, sub := range va {
			other, present := vb[key]
			if !present || !EqualValue(sub, other) {
				return false
			}
		}

		return true
	case nil:
		return b == nil
	default:
		return false
	}
}

// sortedKeys returns r's keys in ascending order.
func sortedKeys(r Record) []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
