// SPDX-License-Identifier: MIT

// Package units: sentinel error set.
// Unit definitions are checked with Validate; conversions through a broken
// definition panic with one of these wrapped by the unit's symbol.

package units

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator indicates a Ratio whose Den is zero.
	ErrZeroDenominator = errors.New("units: ratio denominator is zero")

	// ErrZeroRatio indicates a Ratio whose value Num/Den is zero.
	ErrZeroRatio = errors.New("units: ratio value is zero")

	// ErrEmptySymbol indicates a unit type that reports no symbol.
	ErrEmptySymbol = errors.New("units: empty unit symbol")
)

// unitsErrorf wraps err with a tag (usually a unit symbol or an op name).
// Use only when err != nil.
func unitsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
