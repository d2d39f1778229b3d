// Package grid exposes a flat, contiguous slice as a lexicographic 2-D
// view: rows, columns, and their reverses, without copying or owning the
// underlying storage.
//
// What:
//
//   - View[T] attaches to a caller-owned slice plus a row length and maps
//     logical cell (column i, row j) to flat offset j*rowLen + i. That
//     row-major formula is the single source of truth for every accessor.
//   - Row cursors are contiguous (cursor.Unit); column cursors are strided
//     with the row length as step (cursor.Strided); both come with reverse
//     counterparts (cursor.Reverse).
//   - Column(i) is the indexed-access entry point: a cursor at the head of
//     column i, ready to walk row-by-row down the fixed column.
//
// Why:
//
//   - Finite-difference schemes store a discretized two-variable function
//     in one buffer and must sweep it along either axis, forwards or
//     backwards, with identical cost.
//   - Any code that fills a flat buffer row-by-row and later needs
//     column-wise passes without transposing.
//
// The view holds no ownership: it is valid exactly as long as the
// attached slice is, it never allocates, and writes through any cursor
// are immediately visible through every other cursor of the same view —
// direct aliasing, not a copy. It provides no locking; concurrent
// mutation of the shared storage is the caller's concern, while multiple
// views may alias the same slice read-only without coordination.
//
// Complexity:
//
//   - Attach, cursors, At/Set, Rows/Cols: O(1), no allocations.
//
// Errors:
//
//   - ErrRowLength: row length is not positive (AttachChecked; Attach
//     panics with it instead, a programmer error on the unchecked path).
//   - ErrNotDivisible: slice length is not a multiple of the row length
//     (AttachChecked only; Attach silently truncates Rows — see Attach).
//
// Out-of-range row or column indices are not validated anywhere on the
// access path: the contract is 0 ≤ i < Cols() and 0 ≤ j < Rows(), and
// breaking it yields either an in-slice misread or a runtime bounds
// panic, never a checked error. This mirrors the zero-overhead contract
// of the cursors underneath.
package grid
