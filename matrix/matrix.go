// SPDX-License-Identifier: MIT

// Package matrix: named shapes for the sizes graphics code uses every day.
//
// The aliases are plain Go type aliases, so Matrix4x4 and
// Matrix[float64, D4, D4] are the same type and mix freely. The "f" suffix
// selects float32 storage, the element type most GPU APIs expect.
package matrix

// Square shapes.
type (
	Matrix2x2  = Matrix[float64, D2, D2]
	Matrix2x2f = Matrix[float32, D2, D2]
	Matrix3x3  = Matrix[float64, D3, D3]
	Matrix3x3f = Matrix[float32, D3, D3]
	Matrix4x4  = Matrix[float64, D4, D4]
	Matrix4x4f = Matrix[float32, D4, D4]
)

// Rectangular shapes.
type (
	Matrix2x3  = Matrix[float64, D2, D3]
	Matrix2x3f = Matrix[float32, D2, D3]
	Matrix2x4  = Matrix[float64, D2, D4]
	Matrix2x4f = Matrix[float32, D2, D4]
	Matrix3x2  = Matrix[float64, D3, D2]
	Matrix3x2f = Matrix[float32, D3, D2]
	Matrix3x4  = Matrix[float64, D3, D4]
	Matrix3x4f = Matrix[float32, D3, D4]
	Matrix4x2  = Matrix[float64, D4, D2]
	Matrix4x2f = Matrix[float32, D4, D2]
	Matrix4x3  = Matrix[float64, D4, D3]
	Matrix4x3f = Matrix[float32, D4, D3]
)
