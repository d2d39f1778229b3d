// Package cursor core capability: the RandomAccess interface shared by
// every cursor type, plus conformance assertions.
package cursor

// RandomAccess is the capability a forward cursor must offer to be
// composed by adaptors such as Reverse: O(1) offset arithmetic, O(1)
// distance, and element access through the borrowed storage.
//
// C is the concrete cursor type itself (self-referential, so Advance
// preserves the concrete type), T the element type.
type RandomAccess[C, T any] interface {
	// Advance returns a copy of the cursor moved by n steps; n may be
	// negative. It never mutates the receiver.
	Advance(n int) C

	// Distance returns the number of steps from the receiver to 'to',
	// positive when 'to' is ahead of the receiver.
	Distance(to C) int

	// Deref returns the element at the current position.
	Deref() T

	// Assign stores v at the current position, writing through to the
	// borrowed slice.
	Assign(v T)
}

// Compile-time conformance checks: all three cursor families expose the
// same random-access surface.
var (
	_ RandomAccess[Unit[int], int]                  = Unit[int]{}
	_ RandomAccess[Strided[int], int]               = Strided[int]{}
	_ RandomAccess[Reverse[Unit[int], int], int]    = Reverse[Unit[int], int]{}
	_ RandomAccess[Reverse[Strided[int], int], int] = Reverse[Strided[int], int]{}
)
