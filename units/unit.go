// SPDX-License-Identifier: MIT

package units

import (
	"cmp"
	"fmt"
)

// Unit is a quantity of category C expressed in unit U.
// The payload is private; build values with New and read them with Value.
// Unit is immutable: every operation returns a new value.
type Unit[T Float, C Category, U UnitType[C]] struct {
	value T
}

// quantity matches every Unit instantiation with payload T.
type quantity[T Float] interface {
	~struct{ value T }
}

// New builds a quantity of type Q holding v. Q is usually one of the alias
// types of the package:
//
//	d := units.New[units.Kilometers](1.5)
//	t := units.New[units.Seconds32](2)
func New[Q quantity[T], T Float](v T) Q {
	return Q{v}
}

// Value returns the payload in the quantity's own unit.
func (q Unit[T, C, U]) Value() T {
	return q.value
}

// Symbol returns the symbol of U.
func (q Unit[T, C, U]) Symbol() string {
	var u U

	return u.Symbol()
}

// Dimension returns the category of the quantity.
func (q Unit[T, C, U]) Dimension() Dimension {
	var c C

	return c.Dimension()
}

// String formats the quantity as "<value> <symbol>".
func (q Unit[T, C, U]) String() string {
	return fmt.Sprintf("%g %s", q.value, q.Symbol())
}

// Scale multiplies the payload by s. No unit conversion is involved.
func (q Unit[T, C, U]) Scale(s T) Unit[T, C, U] {
	return Unit[T, C, U]{value: q.value * s}
}

// DivScalar divides the payload by s. There is no zero check; IEEE rules apply.
func (q Unit[T, C, U]) DivScalar(s T) Unit[T, C, U] {
	return Unit[T, C, U]{value: q.value / s}
}

// Neg returns -q.
func (q Unit[T, C, U]) Neg() Unit[T, C, U] {
	return Unit[T, C, U]{value: -q.value}
}

// As converts q into unit V of the same category.
//
// Behavior highlights:
//   - V must be a unit type of q's category, otherwise the call does not
//     compile: units.As[units.Second](meters) is rejected.
//   - Converting into the same unit type, or into a unit with the same ratio
//     value, returns the payload unchanged.
//   - Otherwise the payload becomes value·r/nr, with r and nr the two ratio
//     values computed in T.
//
// As panics when either unit has a zero ratio (see Validate).
func As[V UnitType[C], T Float, C Category, U UnitType[C]](q Unit[T, C, U]) Unit[T, C, V] {
	var (
		u U
		v V
	)
	if any(u) == any(v) {
		return Unit[T, C, V]{value: q.value}
	}

	return Unit[T, C, V]{value: convert(q.value, u, v)}
}

// Factor returns the multiplier that converts a payload in unit from into
// unit to, computed in T. It is 1 for identical ratios and panics on a zero
// ratio.
func Factor[T Float](from, to Descriptor) T {
	r, nr := ratioIn[T](from), ratioIn[T](to)
	if r == nr {
		return 1
	}

	return r / nr
}

// convert rescales v from one unit into another as v·r/nr.
func convert[T Float](v T, from, to Descriptor) T {
	r, nr := ratioIn[T](from), ratioIn[T](to)
	if r == nr {
		return v
	}

	return v * r / nr
}

// Add returns a + b in a's unit.
func Add[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) Unit[T, C, U] {
	// T() rounds the converted operand before the add, which blocks FMA fusion.
	return Unit[T, C, U]{value: a.value + T(As[U](b).value)}
}

// Sub returns a - b in a's unit.
func Sub[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) Unit[T, C, U] {
	return Unit[T, C, U]{value: a.value - T(As[U](b).value)}
}

// Mul multiplies the payloads after converting b into a's unit. The result
// keeps a's unit and category; use the derived operators (ForceOf, ...) for
// products that change category.
func Mul[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) Unit[T, C, U] {
	return Unit[T, C, U]{value: a.value * As[U](b).value}
}

// Div divides the payloads after converting b into a's unit. The result
// keeps a's unit and category.
func Div[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) Unit[T, C, U] {
	return Unit[T, C, U]{value: a.value / As[U](b).value}
}

// Equal reports whether a and b are the same quantity after converting b into
// a's unit. The comparison is exact.
func Equal[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) bool {
	return a.value == As[U](b).value
}

// Compare returns -1, 0 or +1 ordering a against b converted into a's unit.
// NaN orders before every other value, as in cmp.Compare.
func Compare[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) int {
	return cmp.Compare(a.value, As[U](b).value)
}

// Less reports whether a < b after converting b into a's unit.
func Less[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V]) bool {
	return a.value < As[U](b).value
}

// ApproxEqual reports whether |a - b| ≤ tol, with b converted into a's unit
// and tol expressed in a's unit. NaN never matches.
func ApproxEqual[T Float, C Category, U, V UnitType[C]](a Unit[T, C, U], b Unit[T, C, V], tol T) bool {
	d := a.value - As[U](b).value
	if d < 0 {
		d = -d
	}

	return d <= tol
}
