package grid

import "github.com/katalvlaran/gridview/cursor"

// Attach binds a view with the given row length to a caller-owned slice.
// This is the unchecked path: when len(data) is not an exact multiple of
// xSize, the trailing remainder is silently excluded and Rows() reflects
// the truncated division — the caller is responsible for supplying a
// divisible pairing. Use AttachChecked to make that invariant explicit.
//
// Panics with ErrRowLength when xSize <= 0 (programmer error; a row
// length is part of the call shape, not runtime input).
// Complexity: O(1), no copy.
func Attach[T any](data []T, xSize int) View[T] {
	if xSize <= 0 {
		panic(ErrRowLength)
	}

	return View[T]{data: data, xSize: xSize, ySize: len(data) / xSize}
}

// AttachChecked binds a view like Attach, but validates the construction
// invariants instead of truncating: xSize must be positive and must
// divide len(data) exactly.
//
// Errors:
//   - ErrRowLength when xSize <= 0.
//   - ErrNotDivisible when len(data) % xSize != 0.
//
// Complexity: O(1), no copy.
func AttachChecked[T any](data []T, xSize int) (View[T], error) {
	if xSize <= 0 {
		return View[T]{}, ErrRowLength
	}
	if len(data)%xSize != 0 {
		return View[T]{}, ErrNotDivisible
	}

	return View[T]{data: data, xSize: xSize, ySize: len(data) / xSize}, nil
}

// AttachBetween binds a view to the half-open window [begin, end) of the
// cursors' shared backing slice. Unchecked, like Attach.
// Complexity: O(1), no copy.
func AttachBetween[T any](begin, end cursor.Unit[T], xSize int) View[T] {
	return Attach(cursor.Span(begin, end), xSize)
}

// Cols returns the row length: the number of elements per row, i.e. the
// extent of the view along x. Complexity: O(1).
func (v View[T]) Cols() int {
	return v.xSize
}

// Rows returns the number of rows: the extent of the view along y, i.e.
// the number of elements in each column. Complexity: O(1).
func (v View[T]) Rows() int {
	return v.ySize
}

// At returns the element at column i, row j via the row-major formula
// j*Cols() + i. Indices are not validated against the grid: out-of-range
// input reads a neighboring cell or panics on the slice bound (caller
// contract, see package doc). Complexity: O(1).
func (v View[T]) At(i, j int) T {
	return v.data[j*v.xSize+i]
}

// Set stores val at column i, row j, writing through to the attached
// slice. Same index contract as At. Complexity: O(1).
func (v View[T]) Set(i, j int, val T) {
	v.data[j*v.xSize+i] = val
}
