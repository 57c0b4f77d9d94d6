// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Length returns the Euclidean norm √(Σ vᵢ²).
func (v Vector[T, N]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalized returns v / |v|, or the zero vector when |v| is zero.
// v itself is not modified.
func (v Vector[T, N]) Normalized() Vector[T, N] {
	l := v.Length()
	if l == 0 {
		return Vector[T, N]{}
	}

	return v.each(func(x T) T { return x / l })
}

// Dot returns Σ aᵢ·bᵢ accumulated in index order.
func (v Vector[T, N]) Dot(o Vector[T, N]) T {
	var sum T
	for i := 0; i < v.Len(); i++ {
		sum += v.c[i] * o.c[i]
	}

	return sum
}

// Add returns v + o.
func (v Vector[T, N]) Add(o Vector[T, N]) Vector[T, N] {
	return v.zip(o, func(x, y T) T { return x + y })
}

// Sub returns v - o.
func (v Vector[T, N]) Sub(o Vector[T, N]) Vector[T, N] {
	return v.zip(o, func(x, y T) T { return x - y })
}

// Mul returns the componentwise product of v and o.
func (v Vector[T, N]) Mul(o Vector[T, N]) Vector[T, N] {
	return v.zip(o, func(x, y T) T { return x * y })
}

// Scale returns s·v.
func (v Vector[T, N]) Scale(s T) Vector[T, N] {
	return v.each(func(x T) T { return x * s })
}

// Div returns v / s. An exact zero divisor yields ErrDivideByZero and the
// zero vector.
func (v Vector[T, N]) Div(s T) (Vector[T, N], error) {
	if s == 0 {
		return Vector[T, N]{}, vectorErrorf(opDiv, ErrDivideByZero)
	}

	return v.each(func(x T) T { return x / s }), nil
}

// Neg returns -v.
func (v Vector[T, N]) Neg() Vector[T, N] {
	return v.each(func(x T) T { return -x })
}

// Equal reports exact componentwise equality.
func (v Vector[T, N]) Equal(o Vector[T, N]) bool {
	return v == o
}

// ApproxEqual reports whether every component differs by at most tol.
func (v Vector[T, N]) ApproxEqual(o Vector[T, N], tol T) bool {
	var d T
	for i := 0; i < v.Len(); i++ {
		d = v.c[i] - o.c[i]
		if d < 0 {
			d = -d
		}
		if !(d <= tol) {
			return false
		}
	}

	return true
}

func (v Vector[T, N]) each(f func(x T) T) Vector[T, N] {
	var out Vector[T, N]
	for i := 0; i < v.Len(); i++ {
		out.c[i] = f(v.c[i])
	}

	return out
}

func (v Vector[T, N]) zip(o Vector[T, N], f func(x, y T) T) Vector[T, N] {
	var out Vector[T, N]
	for i := 0; i < v.Len(); i++ {
		out.c[i] = f(v.c[i], o.c[i])
	}

	return out
}

// GoString makes %#v print the component list instead of the backing array.
func (v Vector[T, N]) GoString() string {
	return fmt.Sprintf("vector.Vector%d%v", v.Len(), v)
}
