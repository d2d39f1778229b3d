package cursor_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/gridview/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRev_DerefBehind verifies the reverse convention: a reverse cursor
// wrapping forward position P dereferences the element at P−1.
func TestRev_DerefBehind(t *testing.T) {
	data := []int{10, 20, 30}
	r := cursor.Rev[cursor.Unit[int], int](cursor.End(data))

	require.Equal(t, 30, r.Deref(), "Rev(end) must address the last element")
	require.Equal(t, 20, r.Next().Deref())
	require.Equal(t, 10, r.Advance(2).Deref())
}

// TestRev_UnitOrder verifies a reverse unit range yields elements backwards.
func TestRev_UnitOrder(t *testing.T) {
	data := []int{1, 2, 3, 4}
	rbegin := cursor.Rev[cursor.Unit[int], int](cursor.End(data))
	rend := cursor.Rev[cursor.Unit[int], int](cursor.Begin(data))

	assert.Equal(t, []int{4, 3, 2, 1}, slices.Collect(rbegin.Until(rend)))
	assert.Equal(t, len(data), rbegin.Distance(rend), "reverse range spans the full length")
}

// TestRev_StridedOrder verifies the adaptor composes with a strided cursor.
func TestRev_StridedOrder(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	begin := cursor.Stride(data, 2, 4) // column: 2, 6, 10
	end := begin.Advance(3)

	rbegin := cursor.Rev[cursor.Strided[int], int](end)
	rend := cursor.Rev[cursor.Strided[int], int](begin)

	assert.Equal(t, []int{10, 6, 2}, slices.Collect(rbegin.Until(rend)))
	assert.Equal(t, 3, rbegin.Distance(rend))
}

// TestRev_Assign verifies a write through a reverse cursor lands one step
// behind the wrapped forward position.
func TestRev_Assign(t *testing.T) {
	data := []int{1, 2, 3}
	r := cursor.Rev[cursor.Unit[int], int](cursor.End(data))

	r.Assign(33)
	require.Equal(t, []int{1, 2, 33}, data)

	r.Next().Assign(22)
	require.Equal(t, []int{1, 22, 33}, data)
}

// TestRev_RoundTrip verifies Rev(Rev(x)) is positionally identical to x
// and that Base recovers the wrapped cursor unchanged.
func TestRev_RoundTrip(t *testing.T) {
	data := []int{5, 6, 7, 8}
	fwd := cursor.At(data, 2)

	r := cursor.Rev[cursor.Unit[int], int](fwd)
	rr := cursor.Rev[cursor.Reverse[cursor.Unit[int], int], int](r)

	require.Equal(t, fwd.Deref(), rr.Deref(), "double reverse must address the forward element")
	require.Equal(t, fwd.Index(), r.Base().Index(), "Base must recover the wrapped position")
	require.Equal(t, fwd.Index(), rr.Base().Base().Index())

	// Walking a doubly-reversed range restores forward order.
	rrEnd := cursor.Rev[cursor.Reverse[cursor.Unit[int], int], int](r.Advance(-2))
	assert.Equal(t, []int{7, 8}, slices.Collect(rr.Until(rrEnd)))
}
