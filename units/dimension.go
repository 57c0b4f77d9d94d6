// SPDX-License-Identifier: MIT

package units

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the payload constraint for quantities (float32 or float64).
type Float interface {
	constraints.Float
}

// Dimension enumerates the physical categories known to the package.
type Dimension int

const (
	DimLength Dimension = iota
	DimTime
	DimMass
	DimAngle
	DimVolume
	DimVelocity
	DimAcceleration
	DimForce
	DimImpulse
	DimEnergy
	DimDensity
)

var dimensionNames = [...]string{
	DimLength:       "length",
	DimTime:         "time",
	DimMass:         "mass",
	DimAngle:        "angle",
	DimVolume:       "volume",
	DimVelocity:     "velocity",
	DimAcceleration: "acceleration",
	DimForce:        "force",
	DimImpulse:      "impulse",
	DimEnergy:       "energy",
	DimDensity:      "density",
}

func (d Dimension) String() string {
	if d >= 0 && int(d) < len(dimensionNames) {
		return dimensionNames[d]
	}

	return fmt.Sprintf("dimension(%d)", int(d))
}

// Category is a marker type standing for one Dimension. Two units can be
// converted into each other only when their unit types report the same
// Category type.
type Category interface {
	Dimension() Dimension
}

// Category markers.
type (
	Length       struct{}
	Time         struct{}
	Mass         struct{}
	Angle        struct{}
	Volume       struct{}
	Velocity     struct{}
	Acceleration struct{}
	Force        struct{}
	Impulse      struct{}
	Energy       struct{}
	Density      struct{}
)

// Speed is another name for Velocity.
type Speed = Velocity

func (Length) Dimension() Dimension       { return DimLength }
func (Time) Dimension() Dimension         { return DimTime }
func (Mass) Dimension() Dimension         { return DimMass }
func (Angle) Dimension() Dimension        { return DimAngle }
func (Volume) Dimension() Dimension       { return DimVolume }
func (Velocity) Dimension() Dimension     { return DimVelocity }
func (Acceleration) Dimension() Dimension { return DimAcceleration }
func (Force) Dimension() Dimension        { return DimForce }
func (Impulse) Dimension() Dimension      { return DimImpulse }
func (Energy) Dimension() Dimension       { return DimEnergy }
func (Density) Dimension() Dimension      { return DimDensity }

// Descriptor is the run-time view of a unit type.
type Descriptor interface {
	Ratio() Ratio
	Symbol() string
}

// UnitType is satisfied by the unit types of category C. Unit types are
// comparable empty structs; all their information lives in their methods.
type UnitType[C Category] interface {
	comparable
	Descriptor
	Category() C
}
