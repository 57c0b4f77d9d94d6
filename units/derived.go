// SPDX-License-Identifier: MIT

package units

// toBase returns q's payload expressed in the canonical base unit of C.
// Every canonical base has ratio 1, so this is value·ratio(U).
func toBase[T Float, C Category, U UnitType[C]](q Unit[T, C, U]) T {
	var u U

	return q.value * ratioIn[T](u)
}

// fromBase builds a quantity of unit U from a payload in C's canonical base.
func fromBase[T Float, C Category, U UnitType[C]](v T) Unit[T, C, U] {
	var u U

	return Unit[T, C, U]{value: v / ratioIn[T](u)}
}
