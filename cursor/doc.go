// Package cursor provides random-access position handles over a borrowed
// slice: unit-step cursors, fixed-stride cursors, and a reverse adaptor
// generic over both.
//
// What:
//
//   - Unit[T] addresses consecutive elements of a slice (step = 1).
//   - Strided[T] addresses every step-th element; distance is counted in
//     steps, not elements.
//   - Reverse[C, T] wraps any forward cursor and traverses its range in
//     the opposite order, dereferencing one step behind the wrapped
//     position (the standard reverse-range convention).
//   - RandomAccess[C, T] names the capability all three share, so adaptors
//     compose: Reverse itself satisfies RandomAccess.
//
// Why:
//
//   - Walking a flat buffer along a non-unit stride (matrix columns,
//     interleaved channels, lattice sweeps) without copying it.
//   - Iterating a range backwards without materializing a reversed copy.
//   - Building higher-level views (see the grid package) out of small,
//     independently testable parts.
//
// Cursors are immutable values: Advance returns a moved copy and never
// mutates the receiver. They borrow the slice they address — writes via
// Assign go straight into the caller's storage, and a cursor stays valid
// exactly as long as that storage does.
//
// Complexity:
//
//   - Advance, Distance, Deref, Assign: O(1), no allocations.
//   - Until: O(n) over the yielded range, no allocations.
//
// Contract:
//
//   - Deref/Assign outside the backing slice is out of contract; the Go
//     runtime bounds check turns it into a panic, never a wild access.
//   - Distance between cursors over different backing slices, or between
//     strided cursors whose positions are not a whole number of steps
//     apart, is likewise out of contract.
//   - Stride panics on a zero step (programmer error, not a runtime
//     condition).
package cursor
