package grid

import "errors"

// Sentinel errors for view construction. Tests and callers match them via
// errors.Is; the access path itself never returns errors.
var (
	// ErrRowLength indicates a non-positive row length.
	ErrRowLength = errors.New("grid: row length must be positive")
	// ErrNotDivisible indicates the attached slice length is not an exact
	// multiple of the row length.
	ErrNotDivisible = errors.New("grid: slice length is not a multiple of the row length")
)
