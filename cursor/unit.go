package cursor

import "iter"

// Unit is a unit-step cursor: position pos within a borrowed slice,
// advancing one element per step. The zero value is unusable; construct
// with At, Begin, or End.
type Unit[T any] struct {
	data []T // borrowed backing storage, never reallocated by the cursor
	pos  int // current index; len(data) is the legal one-past-end position
}

// At returns a unit cursor addressing data[pos].
// pos == len(data) is the legal one-past-end position (dereferencing it
// is out of contract). Complexity: O(1).
func At[T any](data []T, pos int) Unit[T] {
	return Unit[T]{data: data, pos: pos}
}

// Begin returns a cursor at the first element of data.
// Complexity: O(1).
func Begin[T any](data []T) Unit[T] {
	return Unit[T]{data: data}
}

// End returns the one-past-end cursor of data.
// Complexity: O(1).
func End[T any](data []T) Unit[T] {
	return Unit[T]{data: data, pos: len(data)}
}

// Deref returns the element at the current position.
// Complexity: O(1).
func (c Unit[T]) Deref() T {
	return c.data[c.pos]
}

// Assign stores v at the current position, writing through to the
// borrowed slice. Complexity: O(1).
func (c Unit[T]) Assign(v T) {
	c.data[c.pos] = v
}

// Advance returns a copy of the cursor moved by n elements; n may be
// negative. Complexity: O(1).
func (c Unit[T]) Advance(n int) Unit[T] {
	c.pos += n

	return c
}

// Next returns the cursor moved one element forward.
// Complexity: O(1).
func (c Unit[T]) Next() Unit[T] {
	return c.Advance(1)
}

// Prev returns the cursor moved one element backward.
// Complexity: O(1).
func (c Unit[T]) Prev() Unit[T] {
	return c.Advance(-1)
}

// Distance returns the number of elements from c to 'to', positive when
// 'to' is ahead. Both cursors must address the same backing slice.
// Complexity: O(1).
func (c Unit[T]) Distance(to Unit[T]) int {
	return to.pos - c.pos
}

// Index returns the current position within the backing slice.
// Complexity: O(1).
func (c Unit[T]) Index() int {
	return c.pos
}

// Until yields the elements of the half-open range [c, end) in order,
// for range-over-func consumption. Complexity: O(distance).
func (c Unit[T]) Until(end Unit[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := c; it.Distance(end) > 0; it = it.Next() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}

// Span returns the backing subwindow [begin, end) as a slice aliasing the
// same storage. Both cursors must address the same backing slice; an
// inverted or out-of-range pair panics via the runtime slice check.
// Complexity: O(1), no copy.
func Span[T any](begin, end Unit[T]) []T {
	return begin.data[begin.pos:end.pos]
}
