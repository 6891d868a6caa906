package brownian

import "errors"

var (
	// ErrNotConstructed is returned when Evaluate is called on a nil or
	// zero-value sampler that never went through a constructor.
	ErrNotConstructed = errors.New("brownian: sampler must be built with NewUnsafePath or NewUnsafeVector")
)
