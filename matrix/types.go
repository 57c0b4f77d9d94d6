// SPDX-License-Identifier: MIT

// Package matrix: shape descriptors and the Matrix value type.
// Shapes live in the type system: a Dim is any type that reports a positive
// length, and Shrinker links a Dim to its predecessor for Minor.
package matrix

import "golang.org/x/exp/constraints"

// Float is the element constraint for matrices (float32 or float64).
type Float interface {
	constraints.Float
}

// Dim describes a compile-time matrix dimension.
// Len must return a positive constant; the zero value of the type is used.
type Dim interface {
	Len() int
}

// Shrinker is a Dim that knows the Dim one smaller than itself.
// It is what makes Minor reject 1×1 matrices at compile time.
type Shrinker[P Dim] interface {
	Dim
	Shrink() P
}

// Predefined dimensions. Callers needing larger shapes declare their own
// struct type with Len and Shrink methods.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }

func (D2) Shrink() D1 { return D1{} }
func (D3) Shrink() D2 { return D2{} }
func (D4) Shrink() D3 { return D3{} }
func (D5) Shrink() D4 { return D4{} }
func (D6) Shrink() D5 { return D5{} }

// Matrix is an R×C matrix of T stored row-major in one contiguous slice.
//
// Matrix has value semantics: results always own fresh storage and Set is
// copy-on-write, so a Matrix copied by assignment is independent of the
// original. The zero value is a valid all-zero matrix.
type Matrix[T Float, R, C Dim] struct {
	data []T // row-major, len == rows*cols; nil means "all zeros"
}
