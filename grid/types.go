package grid

// View is a non-owning lexicographic 2-D view over a borrowed slice.
// data is the attached window, xSize the row length, and ySize the
// derived row count len(data)/xSize (truncating when the length is not
// an exact multiple — see Attach vs AttachChecked).
//
// A View is a small value: copy it freely. It stays valid exactly as
// long as the attached slice is valid and unchanged in size, and it has
// no state to release.
type View[T any] struct {
	data  []T // borrowed backing storage, never reallocated by the view
	xSize int // elements per row, > 0
	ySize int // number of rows, len(data)/xSize truncated
}
