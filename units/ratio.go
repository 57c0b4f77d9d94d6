// SPDX-License-Identifier: MIT

package units

import "fmt"

// Ratio is the scale of a unit relative to its category's canonical base
// unit, as Num/Den. SI prefixes use integer parts (Kilometer is 1000/1,
// Millisecond is 1/1000); Radian is 180/π degrees.
type Ratio struct {
	Num float64
	Den float64
}

// Value returns Num/Den.
func (r Ratio) Value() float64 {
	return r.Num / r.Den
}

// Multiply returns r·o without reducing the fraction.
func (r Ratio) Multiply(o Ratio) Ratio {
	return Ratio{Num: r.Num * o.Num, Den: r.Den * o.Den}
}

// Divide returns r/o without reducing the fraction.
func (r Ratio) Divide(o Ratio) Ratio {
	return Ratio{Num: r.Num * o.Den, Den: r.Den * o.Num}
}

// Validate reports ErrZeroDenominator or ErrZeroRatio for an unusable ratio.
func (r Ratio) Validate() error {
	if r.Den == 0 {
		return ErrZeroDenominator
	}
	if r.Num == 0 {
		return ErrZeroRatio
	}

	return nil
}

func (r Ratio) String() string {
	return fmt.Sprintf("%g/%g", r.Num, r.Den)
}

// ratioIn returns the value of d's ratio computed in T, panicking on a
// broken definition.
func ratioIn[T Float](d Descriptor) T {
	r := d.Ratio()
	if err := r.Validate(); err != nil {
		panic(unitsErrorf(d.Symbol(), err))
	}

	return T(r.Num) / T(r.Den)
}

// Validate checks a unit definition: its ratio must have a non-zero
// denominator and a non-zero value, and its symbol must not be empty.
func Validate(d Descriptor) error {
	if err := d.Ratio().Validate(); err != nil {
		return unitsErrorf(fmt.Sprintf("%T", d), err)
	}
	if d.Symbol() == "" {
		return unitsErrorf(fmt.Sprintf("%T", d), ErrEmptySymbol)
	}

	return nil
}
