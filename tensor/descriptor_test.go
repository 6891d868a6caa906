package tensor_test

import (
	"testing"

	"github.com/katalvlaran/wiener/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nestedDesc builds a representative deep descriptor used across tests:
// a record holding a leaf, a list of two leaves, and a nested record.
func nestedDesc() tensor.Descriptor {
	return tensor.Record{
		"b": tensor.List{tensor.NewLeaf(2), tensor.NewLeaf(3).WithDtype(tensor.Float32)},
		"a": tensor.NewLeaf(4),
		"c": tensor.Record{"inner": tensor.NewLeaf()},
	}
}

// TestWalk_CanonicalOrder verifies that leaves are visited lists-by-index
// and records-by-sorted-key, independent of map iteration order.
func TestWalk_CanonicalOrder(t *testing.T) {
	var paths []string
	err := tensor.Walk(nestedDesc(), func(path string, _ tensor.Leaf) error {
		paths = append(paths, path)

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"$.a", "$.b[0]", "$.b[1]", "$.c.inner"}, paths,
		"walk order must be sorted keys then list indices")
}

// TestNumLeaves counts leaves of nested and trivial descriptors.
func TestNumLeaves(t *testing.T) {
	assert.Equal(t, 4, tensor.NumLeaves(nestedDesc()))
	assert.Equal(t, 1, tensor.NumLeaves(tensor.NewLeaf(7)))
	assert.Equal(t, 0, tensor.NumLeaves(tensor.List{}))
}

// TestLeaf_NumElements verifies element counting including scalars.
func TestLeaf_NumElements(t *testing.T) {
	assert.Equal(t, 1, tensor.NewLeaf().NumElements(), "scalar leaf has one element")
	assert.Equal(t, 12, tensor.NewLeaf(3, 4).NumElements())
	assert.Equal(t, 0, tensor.NewLeaf(3, 0).NumElements())
}

// TestBuild_StructureFidelity verifies that Build reassembles arrays into
// exactly the descriptor's nesting, shapes and dtypes, and that leaf
// ordinals follow canonical walk order.
func TestBuild_StructureFidelity(t *testing.T) {
	var ordinals []int
	v, err := tensor.Build(nestedDesc(), func(i int, _ string, l tensor.Leaf) (*tensor.Array, error) {
		ordinals = append(ordinals, i)
		if l.Dtype == tensor.Float32 {
			return tensor.FromFloat32s(l.Shape, make([]float32, l.NumElements()))
		}

		return tensor.FromFloat64s(l.Shape, make([]float64, l.NumElements()))
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, ordinals, "leaf ordinals must follow walk order")

	rec, ok := v.(tensor.ValueRecord)
	require.True(t, ok, "record descriptor must yield ValueRecord")
	require.Len(t, rec, 3)

	a, ok := rec["a"].(*tensor.Array)
	require.True(t, ok)
	assert.Equal(t, []int{4}, a.Shape())
	assert.Equal(t, tensor.Float64, a.Dtype())

	list, ok := rec["b"].(tensor.ValueList)
	require.True(t, ok, "list descriptor must yield ValueList")
	require.Len(t, list, 2)
	assert.Equal(t, tensor.Float32, list[1].(*tensor.Array).Dtype())

	inner, ok := rec["c"].(tensor.ValueRecord)
	require.True(t, ok)
	assert.Equal(t, 1, inner["inner"].(*tensor.Array).Len(), "scalar leaf yields one element")
}

// TestBuild_PropagatesLeafError verifies Build stops at the first failing
// leaf and returns its error.
func TestBuild_PropagatesLeafError(t *testing.T) {
	_, err := tensor.Build(nestedDesc(), func(i int, _ string, l tensor.Leaf) (*tensor.Array, error) {
		// Wrong element count on purpose: triggers ErrLengthMismatch.
		return tensor.FromFloat64s(l.Shape, make([]float64, l.NumElements()+1))
	})
	assert.ErrorIs(t, err, tensor.ErrLengthMismatch)
}

// TestEqualValue verifies recursive structural equality.
func TestEqualValue(t *testing.T) {
	mk := func() tensor.Value {
		v, err := tensor.Build(nestedDesc(), func(_ int, _ string, l tensor.Leaf) (*tensor.Array, error) {
			if l.Dtype == tensor.Float32 {
				return tensor.FromFloat32s(l.Shape, make([]float32, l.NumElements()))
			}

			return tensor.FromFloat64s(l.Shape, make([]float64, l.NumElements()))
		})
		require.NoError(t, err)

		return v
	}

	u, w := mk(), mk()
	assert.True(t, tensor.EqualValue(u, w), "identically built values must be equal")

	// Perturb one leaf of w.
	w.(tensor.ValueRecord)["a"], _ = tensor.FromFloat64s([]int{4}, []float64{1, 0, 0, 0})
	assert.False(t, tensor.EqualValue(u, w), "a differing leaf must break equality")

	// Mismatched variants are never equal.
	assert.False(t, tensor.EqualValue(u, tensor.ValueList{}))
	assert.True(t, tensor.EqualValue(nil, nil))
}
