// Package gridview is a zero-copy toolkit for treating a flat, contiguous
// slice as a two-dimensional grid — rows, columns, and their reverses,
// with equal ease.
//
// 🚀 What is gridview?
//
//	A small, allocation-free library that brings together:
//		• Cursors: generic random-access position handles over a borrowed slice
//		• Strided traversal: walk every k-th element as a first-class sequence
//		• Reverse adaptors: traverse any forward cursor backwards
//		• Grid views: see a flat buffer as rows × columns without copying it
//
// ✨ Why choose gridview?
//
//   - Zero ownership – the view never allocates, resizes, or frees storage
//   - Direct aliasing – a write through one cursor is visible through all
//   - Pure Go – no cgo, no hidden deps
//   - Reusable parts – the strided cursor stands on its own, outside grids
//
// Under the hood, everything is organized under two subpackages:
//
//	cursor/ — Unit, Strided and Reverse cursors over a borrowed slice
//	grid/   — the lexicographic View composing those cursors into rows/columns
//
// Quick ASCII example:
//
//	flat [0 1 2 3 4 5 6 7 8 9 10 11] with row length 4 becomes
//
//	     0  1  2  3      row 0
//	     4  5  6  7      row 1
//	     8  9 10 11      row 2
//	     │        └─ column 3: 3, 7, 11 (stride 4)
//	     └─ column 0: 0, 4, 8
//
// The typical consumer is a finite-difference scheme that stores a
// discretized two-variable function in one buffer and sweeps it along
// either axis. See examples/ for a worked scenario.
//
//	go get github.com/katalvlaran/gridview
package gridview
