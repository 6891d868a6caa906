package tensor

import "fmt"

// Validate checks a descriptor the way a sampler must at construction time:
// fail fast, before any query can be issued.
//
// Checks, in walk order per leaf:
//   - the subtree is non-nil (ErrNilDescriptor),
//   - every dimension is non-negative (ErrBadShape),
//   - the dtype is a floating-point kind (ErrNonFloatingDtype).
//
// The returned error wraps the matching sentinel and names the offending
// leaf by path, e.g. "$.b[2]".
//
// Complexity: O(number of leaves); allocates only on failure.
func Validate(d Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}

	return Walk(d, func(path string, l Leaf) error {
		for _, dim := range l.Shape {
			if dim < 0 {
				return fmt.Errorf("%w: leaf %s has shape %v", ErrBadShape, path, l.Shape)
			}
		}
		if !l.Dtype.IsFloating() {
			return fmt.Errorf("%w: leaf %s has dtype %s", ErrNonFloatingDtype, path, l.Dtype)
		}

		return nil
	})
}

// wrapPath tags err with the tree position it was detected at.
func wrapPath(path string, err error) error {
	return fmt.Errorf("%w (at %s)", err, path)
}
