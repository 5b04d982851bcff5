// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped with
// call-site context); tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Detection sites wrap with fmt.Errorf("Square.<method>(...): %w", ErrX).

var (
	// ErrInvalidDimensions indicates that a requested grid size is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that input rows do not form an n×n grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilRows indicates that a nil row set was passed to FromRows.
	ErrNilRows = errors.New("matrix: nil rows")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
