// SPDX-License-Identifier: MIT

// Package units implements dimensional analysis in the type system.
//
// A quantity is a Unit[T, C, U]: a single float payload T tagged with a
// physical category C (Length, Time, Mass, ...) and a unit type U of that
// category (Meter, Kilometer, ...). Unit types are empty structs that carry
// a conversion Ratio against the category's canonical base unit.
//
// The package provides:
//
//   - Conversion between units of one category with As. Converting to a unit
//     of another category does not compile.
//   - Same-category arithmetic and comparison (Add, Sub, Mul, Div, Equal,
//     Compare, Less). The right operand is converted into the left operand's
//     unit first, and the result keeps the left operand's unit.
//   - Derived categories: VelocityOf (length / time), AccelerationOf
//     (velocity / time), VelocityAfter (acceleration × time), ForceOf
//     (mass × acceleration), ImpulseOf (mass × velocity), KineticEnergy
//     (½·mass·velocity²) and DensityOf (mass / volume).
//   - Alias tables for every shipped unit in float64 (Meters) and float32
//     (Meters32), built with New:
//
//     m := units.New[units.Kilograms](1)
//     v := units.New[units.MetersPerSecond](10)
//     e := units.KineticEnergy[units.Joule](m, v) // 50 J
//
// Canonical base units: meter, second, kilogram, degree, cubic meter, m/s,
// m/s², newton, newton-second, joule and kg/m³.
//
// A unit definition with a zero ratio is a programmer error: Validate reports
// it and As panics on it.
package units
