// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape and nil checks.
//   - Return sentinel errors tagged with the validator name so call sites can
//     still match with errors.Is.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the grid reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows checks that rows describe an n×n grid with n == len(rows).
//
// Errors: ErrNilRows if rows == nil, ErrNonSquare (with row index) on the
// first row whose length differs from len(rows).
// Complexity: O(n).
func ValidateRows(rows [][]int) error {
	if rows == nil {
		return validatorErrorf("ValidateRows", ErrNilRows)
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf(
				fmt.Sprintf("ValidateRows: row %d has %d values, want %d", i, len(row), n),
				ErrNonSquare,
			)
		}
	}

	return nil
}
