package tensor_test

import (
	"testing"

	"github.com/katalvlaran/wiener/tensor"
	"github.com/stretchr/testify/assert"
)

// TestValidate_AcceptsFloatingTrees verifies well-formed descriptors pass,
// including deep nesting and scalar leaves.
func TestValidate_AcceptsFloatingTrees(t *testing.T) {
	assert.NoError(t, tensor.Validate(tensor.NewLeaf(3)))
	assert.NoError(t, tensor.Validate(tensor.NewLeaf())) // scalar
	assert.NoError(t, tensor.Validate(nestedDesc()))
	assert.NoError(t, tensor.Validate(tensor.List{
		tensor.NewLeaf(1).WithDtype(tensor.Float32),
		tensor.Record{"x": tensor.NewLeaf(2, 2)},
	}))
}

// TestValidate_RejectsNonFloatingLeaf verifies the construction-time dtype
// invariant and that the message names the offending leaf.
func TestValidate_RejectsNonFloatingLeaf(t *testing.T) {
	bad := tensor.Record{
		"ok":  tensor.NewLeaf(2),
		"bad": tensor.List{tensor.NewLeaf(1), tensor.NewLeaf(3).WithDtype(tensor.Int32)},
	}

	err := tensor.Validate(bad)
	assert.ErrorIs(t, err, tensor.ErrNonFloatingDtype)
	assert.Contains(t, err.Error(), "$.bad[1]", "error must identify the offending leaf")
	assert.Contains(t, err.Error(), "int32", "error must name the offending dtype")

	for _, dt := range []tensor.Dtype{tensor.Int64, tensor.Int32, tensor.Bool} {
		err = tensor.Validate(tensor.NewLeaf(1).WithDtype(dt))
		assert.ErrorIs(t, err, tensor.ErrNonFloatingDtype, "dtype %s must be rejected", dt)
	}
}

// TestValidate_RejectsNilAndBadShape verifies nil subtrees and negative
// dimensions fail with their sentinels.
func TestValidate_RejectsNilAndBadShape(t *testing.T) {
	assert.ErrorIs(t, tensor.Validate(nil), tensor.ErrNilDescriptor)
	assert.ErrorIs(t, tensor.Validate(tensor.List{tensor.NewLeaf(1), nil}), tensor.ErrNilDescriptor)
	assert.ErrorIs(t, tensor.Validate(tensor.Record{"x": nil}), tensor.ErrNilDescriptor)
	assert.ErrorIs(t, tensor.Validate(tensor.NewLeaf(2, -1)), tensor.ErrBadShape)
}

// TestDtype_IsFloating pins the floating/non-floating partition.
func TestDtype_IsFloating(t *testing.T) {
	assert.True(t, tensor.Float64.IsFloating())
	assert.True(t, tensor.Float32.IsFloating())
	assert.False(t, tensor.Int64.IsFloating())
	assert.False(t, tensor.Int32.IsFloating())
	assert.False(t, tensor.Bool.IsFloating())
}
