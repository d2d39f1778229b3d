package grid

import (
	"iter"

	"github.com/katalvlaran/gridview/cursor"
)

// Column cursors: strided traversal along y with i fixed, advancing by
// the row length per step. All accessors share one contract —
// 0 ≤ i < Cols(), not validated (see package doc).

// ColBegin returns a strided cursor at the first element of column i
// (row 0), stepping one row at a time. Complexity: O(1).
func (v View[T]) ColBegin(i int) cursor.Strided[T] {
	return cursor.Stride(v.data, i, v.xSize)
}

// ColEnd returns the one-past-end strided cursor of column i.
// Complexity: O(1).
func (v View[T]) ColEnd(i int) cursor.Strided[T] {
	return v.ColBegin(i).Advance(v.ySize)
}

// RevColBegin returns the first reverse position of column i: iterating
// [RevColBegin(i), RevColEnd(i)) yields the column's elements from the
// last row up to row 0. Complexity: O(1).
func (v View[T]) RevColBegin(i int) cursor.Reverse[cursor.Strided[T], T] {
	return cursor.Rev[cursor.Strided[T], T](v.ColEnd(i))
}

// RevColEnd returns the one-past-end reverse position of column i.
// Complexity: O(1).
func (v View[T]) RevColEnd(i int) cursor.Reverse[cursor.Strided[T], T] {
	return cursor.Rev[cursor.Strided[T], T](v.ColBegin(i))
}

// Column is the indexed-access entry point, equivalent to ColBegin(i):
// a cursor at the head of column i, ready to be dereferenced and advanced
// row-by-row down the fixed column without a separate end bound.
// Complexity: O(1).
func (v View[T]) Column(i int) cursor.Strided[T] {
	return v.ColBegin(i)
}

// ColValues yields the elements of column i from row 0 downward, for
// range-over-func consumption. Complexity: O(Rows()).
func (v View[T]) ColValues(i int) iter.Seq[T] {
	return v.ColBegin(i).Until(v.ColEnd(i))
}
