// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewSquare/FromRows: O(n²); At/Set: O(1); Clone/Rows/Total/String: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// squareErrorf wraps a sentinel with a uniform Square context and coordinates.
// Keeps the sentinel reachable through errors.Is.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// NewSquare creates an n×n zero grid using row-major storage.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer of n*n cells.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare(n int) (*Square, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Square{n: n, data: make([]int, n*n)}, nil
}

// FromRows builds a Square by copying a row-of-rows literal.
//
// Implementation:
//   - Stage 1: reject nil input (ErrNilRows).
//   - Stage 2: every row must hold exactly len(rows) values (ErrNonSquare),
//     reported with the offending row index.
//   - Stage 3: copy rows into the flat buffer in order.
//
// Behavior highlights:
//   - An empty, non-nil input yields a legal 0×0 grid.
//   - The result never aliases the caller's slices.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]int) (*Square, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}
	n := len(rows)
	data := make([]int, n*n)
	for i, row := range rows {
		copy(data[i*n:(i+1)*n], row)
	}

	return &Square{n: n, data: data}, nil
}

// Sample returns a fresh copy of the fixed 3×3 grid {{1,2,3},{4,5,6},{7,8,9}}.
func Sample() *Square {
	m, err := FromRows(sampleRows)
	if err != nil {
		// sampleRows is a package literal; failure means the literal was broken.
		panic(fmt.Sprintf("matrix: sample grid invalid: %v", err))
	}

	return m
}

// Size returns the side length n. No side effects.
// Complexity: O(1).
func (m *Square) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Square) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Never panics on out-of-range input.
// Complexity: O(1).
func (m *Square) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Square) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; mutations of the copy do not reach m.
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Square{n: m.n, data: cp}
}

// Rows exports the grid as freshly allocated row slices.
// Complexity: O(n²).
func (m *Square) Rows() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]int, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Total is the plain sum of every cell, in row-major order.
// Complexity: O(n²).
func (m *Square) Total() int {
	sum := 0
	for _, v := range m.data {
		sum += v
	}

	return sum
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging.
func (m *Square) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
