// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the few checks that remain at run time
//    once shapes are encoded in the type: Dim sanity, index bounds and literal shape.
//  - Return plain sentinel errors tagged by validator name so call sites can wrap
//    them uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf returns the row and column counts encoded by R and C.
// A Dim reporting a non-positive length is a programmer error and panics.
// Complexity: O(1).
func shapeOf[R, C Dim]() (int, int) {
	var r R
	var c C
	rows, cols := r.Len(), c.Len()
	if rows <= 0 || cols <= 0 {
		panic(validatorErrorf("shapeOf", fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)))
	}

	return rows, cols
}

// ValidateIndex ensures 0 ≤ row < rows and 0 ≤ col < cols.
//
// Inputs: the index pair and the shape it must fall into.
// Returns ErrOutOfRange (tagged) or nil.
// Complexity: O(1).
func ValidateIndex(row, col, rows, cols int) error {
	// Validate row index
	if row < 0 || row >= rows {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= cols {
		return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
	}

	return nil
}

// ValidateLiteral ensures a nested literal has exactly rows rows of cols values.
//
// Inputs: literal rows and the expected shape.
// Returns ErrBadShape (tagged) or nil.
// Complexity: O(rows).
func ValidateLiteral[T Float](data [][]T, rows, cols int) error {
	if len(data) != rows {
		return validatorErrorf("ValidateLiteral: Rows", ErrBadShape)
	}
	for i := range data {
		if len(data[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateLiteral: Row %d", i), ErrBadShape)
		}
	}

	return nil
}

// ValidateFlat ensures a flat buffer holds exactly rows*cols values.
//
// Returns ErrDimensionMismatch (tagged) or nil.
// Complexity: O(1).
func ValidateFlat[T Float](data []T, rows, cols int) error {
	if len(data) != rows*cols {
		return validatorErrorf("ValidateFlat", ErrDimensionMismatch)
	}

	return nil
}
