// Package matrix provides the square integer grid that traversals run over.
//
// The package provides:
//
//   - Square: an n×n grid of ints in a flat row-major buffer (offset = i*n + j).
//   - Safe accessors: At/Set return ErrOutOfRange instead of panicking.
//   - Constructors that validate shape once: NewSquare (zero-filled) and
//     FromRows (copy from a [][]int literal, rejecting ragged input).
//   - Sample: the fixed 3×3 grid {{1,2,3},{4,5,6},{7,8,9}}.
//
// A Square owns its storage; Rows and Clone hand out copies, so no caller can
// mutate a grid behind the owner's back.
//
// Complexity: NewSquare/FromRows/Clone O(n²); At/Set/Size O(1).
package matrix
