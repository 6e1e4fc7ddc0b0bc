package core

import "errors"

// Caller contract violations. Degenerate intersections (parallel rays,
// empty scenes, non-positive light intensities) are normal control flow
// and never produce errors.
var (
	// ErrInvalidGeometry indicates a degenerate geometric input, such as
	// a zero-length ray direction.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidParameter indicates an out-of-range parameter, such as
	// normalized image coordinates outside [0, 1].
	ErrInvalidParameter = errors.New("invalid parameter")
)
