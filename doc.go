// SPDX-License-Identifier: MIT

// Package luminol is a small maths kit for 3-D graphics and physics code:
// fixed-size matrices whose shapes are checked by the compiler, and physical
// quantities whose dimensions are checked by the compiler.
//
// 🚀 What is in luminol?
//
//	• Matrices: Matrix[T, R, C] with transpose, minor, cofactor,
//	  determinant, adjugate and inverse
//	• Units: length, time, mass, angle, volume and the derived velocity,
//	  acceleration, force, impulse, energy and density categories
//	• Vectors: 1 to 4 components with dot, cross and orthogonal bases
//	• Transforms: left-handed perspective and look-at, translation,
//	  scaling and rotation
//
// ✨ Why luminol?
//
//   - Shape mistakes (adding a 2×3 to a 3×2, inverting a 4×3) do not compile
//   - Unit mistakes (metres plus seconds, force from mass and length) do not compile
//   - Any unit converts to any other of its category with As
//   - Pure Go, float32 and float64 throughout
//
// Packages:
//
//	matrix/    — Matrix[T, R, C], dimension types D1…D6, square-matrix algebra
//	units/     — Unit[T, C, U], unit tables, conversions and derived operators
//	vector/    — Vector[T, N], geometry helpers, row-vector × matrix
//	transform/ — projection, view and affine matrices
//	cmd/luminol — command-line demo of the above
//
// Quick example:
//
//	m := matrix.MustNew[matrix.D2, matrix.D2]([][]float64{{4, 7}, {2, 6}})
//	inv := matrix.Inverse(m) // [[0.6, -0.7], [-0.2, 0.4]]
//
//	e := units.KineticEnergy[units.Joule](
//		units.New[units.Kilograms](1), units.New[units.MetersPerSecond](10),
//	) // 50 J
//
//	go get github.com/katalvlaran/luminol
package luminol
