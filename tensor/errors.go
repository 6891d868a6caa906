package tensor

import "errors"

var (
	// ErrNilDescriptor indicates a nil descriptor or a nil subtree inside one.
	ErrNilDescriptor = errors.New("tensor: descriptor must not be nil")

	// ErrNonFloatingDtype indicates a leaf declared with a non-floating dtype.
	ErrNonFloatingDtype = errors.New("tensor: leaf dtype must be floating-point")

	// ErrBadShape indicates a leaf shape with a negative dimension.
	ErrBadShape = errors.New("tensor: shape dimensions must be non-negative")

	// ErrLengthMismatch indicates data whose length does not match its shape.
	ErrLengthMismatch = errors.New("tensor: data length does not match shape")
)
