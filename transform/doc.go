// SPDX-License-Identifier: MIT

// Package transform builds the 2×2, 3×3 and 4×4 matrices used to place and
// project geometry: left-handed perspective projection and look-at, plus
// translation, scaling and rotation.
//
// Conventions:
//   - Points are row vectors multiplied on the left, p' = p·M (see
//     vector.Apply), so Translate writes its offset into the last row.
//   - Angles are units.Unit values of any angle unit; they are converted to
//     radians with units.As before use.
//   - Rotations about an axis come in 3×3 and 4×4 flavours selected by the
//     matrix size type parameter: RotateZ[matrix.D4](angle).
package transform
