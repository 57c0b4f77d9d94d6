// SPDX-License-Identifier: MIT

// Package vector implements small fixed-size vectors for graphics and
// simulation code.
//
// Vector[T, N] holds 1 to 4 components of float32 or float64 in a fixed array,
// so values are copied by assignment and can be handed to graphics APIs with
// Components. The size N is one of matrix.D1…matrix.D4; any other size does
// not compile.
//
// Cross products exist only for three components and take Vector[T, D3]
// arguments. Div rejects an exact zero divisor with ErrDivideByZero, unlike
// matrix.Matrix.DivScalar which follows IEEE rules silently.
package vector
