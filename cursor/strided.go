package cursor

import "iter"

// panicZeroStep is the message for the Stride programmer-error panic.
const panicZeroStep = "cursor: stride step must not be zero"

// Strided is a fixed-step cursor: each Advance(1) moves step elements
// within the borrowed slice, and Distance is counted in steps rather than
// elements. A negative step walks the slice backwards. The zero value is
// unusable; construct with Stride.
type Strided[T any] struct {
	data []T // borrowed backing storage
	pos  int // current element index
	step int // elements per step, never zero
}

// Stride returns a strided cursor addressing data[pos] and advancing by
// step elements per step. Panics on step == 0: a zero step cannot form a
// sequence and is a programmer error, not a runtime condition.
// Complexity: O(1).
func Stride[T any](data []T, pos, step int) Strided[T] {
	if step == 0 {
		panic(panicZeroStep)
	}

	return Strided[T]{data: data, pos: pos, step: step}
}

// Deref returns the element at the current position.
// Complexity: O(1).
func (c Strided[T]) Deref() T {
	return c.data[c.pos]
}

// Assign stores v at the current position, writing through to the
// borrowed slice. Complexity: O(1).
func (c Strided[T]) Assign(v T) {
	c.data[c.pos] = v
}

// Advance returns a copy of the cursor moved by n steps (n*step
// elements); n may be negative. Complexity: O(1).
func (c Strided[T]) Advance(n int) Strided[T] {
	c.pos += n * c.step

	return c
}

// Next returns the cursor moved one step forward.
// Complexity: O(1).
func (c Strided[T]) Next() Strided[T] {
	return c.Advance(1)
}

// Prev returns the cursor moved one step backward.
// Complexity: O(1).
func (c Strided[T]) Prev() Strided[T] {
	return c.Advance(-1)
}

// Distance returns the number of steps from c to 'to', positive when 'to'
// is ahead along the stride direction. Both cursors must share the same
// backing slice and step, with positions a whole number of steps apart.
// Complexity: O(1).
func (c Strided[T]) Distance(to Strided[T]) int {
	return (to.pos - c.pos) / c.step
}

// Index returns the current element index within the backing slice.
// Complexity: O(1).
func (c Strided[T]) Index() int {
	return c.pos
}

// Step returns the configured elements-per-step.
// Complexity: O(1).
func (c Strided[T]) Step() int {
	return c.step
}

// Until yields the elements of the half-open range [c, end) in stride
// order, for range-over-func consumption. Complexity: O(distance).
func (c Strided[T]) Until(end Strided[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := c; it.Distance(end) > 0; it = it.Next() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}
