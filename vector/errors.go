// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside [0,N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDivideByZero is returned by Div for an exact zero divisor.
	ErrDivideByZero = errors.New("vector: division by zero")

	// ErrBadLength indicates a component list whose length is not N.
	ErrBadLength = errors.New("vector: wrong number of components")
)

// Operation tags for vectorErrorf.
const (
	opNew = "New"
	opAt  = "At"
	opSet = "Set"
	opDiv = "Div"
)

// vectorErrorf wraps err with an operation tag. Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
