// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every runtime failure of the package is one of these sentinels, possibly
// wrapped with an operation tag; callers match them with errors.Is.
// Shape and squareness violations are compile errors and have no sentinel.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside [0,R) or [0,C).
	// Public indexers (At/Set/Row/Minor) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a literal does not have exactly R rows of C
	// values, or when a Dim reports a non-positive length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch is returned when a flat buffer does not hold R*C values.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
