// SPDX-License-Identifier: MIT

package units

import "math"

// Angle units. Degree is the canonical base and Radian is 180/π degrees,
// so converting π radians yields exactly 180 degrees in float64.
type (
	Degree struct{}
	Radian struct{}
)

func (Degree) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Radian) Ratio() Ratio { return Ratio{Num: 180, Den: math.Pi} }

func (Degree) Symbol() string { return "°" }
func (Radian) Symbol() string { return "rad" }

func (Degree) Category() Angle { return Angle{} }
func (Radian) Category() Angle { return Angle{} }

// Angle quantities in float64 and float32.
type (
	Degrees   = Unit[float64, Angle, Degree]
	Degrees32 = Unit[float32, Angle, Degree]
	Radians   = Unit[float64, Angle, Radian]
	Radians32 = Unit[float32, Angle, Radian]
)
