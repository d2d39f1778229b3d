package cursor

import "iter"

// Reverse adapts any forward cursor C to traverse its range in the
// opposite order. It follows the standard reverse-range convention: a
// Reverse wrapping forward position P dereferences the element one step
// behind P, so Rev(end) is the first reverse position of a range and
// Rev(begin) its one-past-end.
//
// Reverse satisfies RandomAccess itself, so it composes: Rev of a Rev
// walks forward again, and Base recovers the wrapped cursor unchanged.
type Reverse[C RandomAccess[C, T], T any] struct {
	fwd C // wrapped forward position, one step ahead of the addressed element
}

// Rev wraps a forward cursor into its reverse counterpart.
// Complexity: O(1).
func Rev[C RandomAccess[C, T], T any](fwd C) Reverse[C, T] {
	return Reverse[C, T]{fwd: fwd}
}

// Base returns the wrapped forward cursor.
// Complexity: O(1).
func (r Reverse[C, T]) Base() C {
	return r.fwd
}

// Deref returns the element one step behind the wrapped forward position.
// Complexity: O(1).
func (r Reverse[C, T]) Deref() T {
	return r.fwd.Advance(-1).Deref()
}

// Assign stores v one step behind the wrapped forward position, writing
// through to the borrowed slice. Complexity: O(1).
func (r Reverse[C, T]) Assign(v T) {
	r.fwd.Advance(-1).Assign(v)
}

// Advance returns a copy of the cursor moved by n steps along the
// reversed direction; n may be negative. Complexity: O(1).
func (r Reverse[C, T]) Advance(n int) Reverse[C, T] {
	return Reverse[C, T]{fwd: r.fwd.Advance(-n)}
}

// Next returns the cursor moved one step along the reversed direction.
// Complexity: O(1).
func (r Reverse[C, T]) Next() Reverse[C, T] {
	return r.Advance(1)
}

// Prev returns the cursor moved one step against the reversed direction.
// Complexity: O(1).
func (r Reverse[C, T]) Prev() Reverse[C, T] {
	return r.Advance(-1)
}

// Distance returns the number of steps from r to 'to' along the reversed
// direction, positive when 'to' is ahead. Complexity: O(1).
func (r Reverse[C, T]) Distance(to Reverse[C, T]) int {
	// Ahead in reverse order means behind in forward order.
	return to.fwd.Distance(r.fwd)
}

// Until yields the elements of the half-open reverse range [r, end), for
// range-over-func consumption. Complexity: O(distance).
func (r Reverse[C, T]) Until(end Reverse[C, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := r; it.Distance(end) > 0; it = it.Next() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}
