// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/luminol/matrix"
)

// Size restricts vectors to 1..4 components.
type Size interface {
	matrix.Dim
	matrix.D1 | matrix.D2 | matrix.D3 | matrix.D4
}

// Vector is an N-component vector of T. Components beyond N are always zero.
// The zero value is the zero vector.
type Vector[T matrix.Float, N Size] struct {
	c [4]T
}

// Common shapes.
type (
	Vector2  = Vector[float64, matrix.D2]
	Vector2f = Vector[float32, matrix.D2]
	Vector3  = Vector[float64, matrix.D3]
	Vector3f = Vector[float32, matrix.D3]
	Vector4  = Vector[float64, matrix.D4]
	Vector4f = Vector[float32, matrix.D4]
)

func sizeOf[N Size]() int {
	var n N

	return n.Len()
}

// New builds a vector from exactly N components.
// Returns ErrBadLength when len(components) != N.
func New[N Size, T matrix.Float](components ...T) (Vector[T, N], error) {
	var v Vector[T, N]
	if n := sizeOf[N](); len(components) != n {
		return v, vectorErrorf(opNew, fmt.Errorf("%d components for size %d: %w", len(components), n, ErrBadLength))
	}
	copy(v.c[:], components)

	return v, nil
}

// Vec1 returns the one-component vector (x).
func Vec1[T matrix.Float](x T) Vector[T, matrix.D1] {
	return Vector[T, matrix.D1]{c: [4]T{x}}
}

// Vec2 returns (x, y).
func Vec2[T matrix.Float](x, y T) Vector[T, matrix.D2] {
	return Vector[T, matrix.D2]{c: [4]T{x, y}}
}

// Vec3 returns (x, y, z).
func Vec3[T matrix.Float](x, y, z T) Vector[T, matrix.D3] {
	return Vector[T, matrix.D3]{c: [4]T{x, y, z}}
}

// Vec4 returns (x, y, z, w).
func Vec4[T matrix.Float](x, y, z, w T) Vector[T, matrix.D4] {
	return Vector[T, matrix.D4]{c: [4]T{x, y, z, w}}
}

// Len returns N.
func (v Vector[T, N]) Len() int {
	return sizeOf[N]()
}

// At returns component i, or ErrOutOfRange.
func (v Vector[T, N]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, v.Len(), ErrOutOfRange))
	}

	return v.c[i], nil
}

// Set writes component i in place, or returns ErrOutOfRange.
func (v *Vector[T, N]) Set(i int, x T) error {
	if i < 0 || i >= v.Len() {
		return vectorErrorf(opSet, fmt.Errorf("index %d of %d: %w", i, v.Len(), ErrOutOfRange))
	}
	v.c[i] = x

	return nil
}

// component reads index i and panics when the vector is too short. It backs
// the named accessors, whose misuse is a programmer error.
func (v Vector[T, N]) component(i int) T {
	x, err := v.At(i)
	if err != nil {
		panic(err)
	}

	return x
}

// X returns the first component.
func (v Vector[T, N]) X() T { return v.c[0] }

// Y returns the second component; it panics for a 1-component vector.
func (v Vector[T, N]) Y() T { return v.component(1) }

// Z returns the third component; it panics for fewer than 3 components.
func (v Vector[T, N]) Z() T { return v.component(2) }

// W returns the fourth component; it panics for fewer than 4 components.
func (v Vector[T, N]) W() T { return v.component(3) }

// Components returns a copy of the N components in order.
func (v Vector[T, N]) Components() []T {
	out := make([]T, v.Len())
	copy(out, v.c[:])

	return out
}

// String formats the vector as "(x, y, z)".
func (v Vector[T, N]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v.c[i])
	}
	sb.WriteByte(')')

	return sb.String()
}
