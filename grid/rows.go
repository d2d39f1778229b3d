package grid

import (
	"iter"

	"github.com/katalvlaran/gridview/cursor"
)

// Row cursors: contiguous traversal along x with j fixed. All accessors
// share one contract — 0 ≤ j < Rows(), not validated (see package doc).

// RowBegin returns a unit cursor at the first element of row j.
// Complexity: O(1).
func (v View[T]) RowBegin(j int) cursor.Unit[T] {
	return cursor.At(v.data, j*v.xSize)
}

// RowEnd returns the one-past-end unit cursor of row j.
// Complexity: O(1).
func (v View[T]) RowEnd(j int) cursor.Unit[T] {
	return cursor.At(v.data, (j+1)*v.xSize)
}

// RevRowBegin returns the first reverse position of row j: iterating
// [RevRowBegin(j), RevRowEnd(j)) yields the row's elements from last to
// first. Complexity: O(1).
func (v View[T]) RevRowBegin(j int) cursor.Reverse[cursor.Unit[T], T] {
	return cursor.Rev[cursor.Unit[T], T](v.RowEnd(j))
}

// RevRowEnd returns the one-past-end reverse position of row j.
// Complexity: O(1).
func (v View[T]) RevRowEnd(j int) cursor.Reverse[cursor.Unit[T], T] {
	return cursor.Rev[cursor.Unit[T], T](v.RowBegin(j))
}

// Row returns row j as a subslice aliasing the attached storage: the
// contiguous-row shortcut when cursor arithmetic is not needed.
// Complexity: O(1), no copy.
func (v View[T]) Row(j int) []T {
	return v.data[j*v.xSize : (j+1)*v.xSize]
}

// RowValues yields the elements of row j in order, for range-over-func
// consumption. Complexity: O(Cols()).
func (v View[T]) RowValues(j int) iter.Seq[T] {
	return v.RowBegin(j).Until(v.RowEnd(j))
}
