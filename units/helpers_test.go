// SPDX-License-Identifier: MIT

// Package units_test contains shared fixtures: the catalogue of every shipped
// unit per category and small assertion helpers.
package units_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/luminol/units"
)

// catalogue lists every unit definition shipped by the package, grouped by
// dimension. Round-trip and validation tests iterate over it.
var catalogue = map[units.Dimension][]units.Descriptor{
	units.DimLength: {
		units.Kilometer{}, units.Meter{}, units.Centimeter{},
		units.Millimeter{}, units.Micrometer{}, units.Nanometer{},
	},
	units.DimTime: {
		units.Hour{}, units.Minute{}, units.Second{},
		units.Millisecond{}, units.Microsecond{}, units.Nanosecond{},
	},
	units.DimMass: {
		units.Kilogram{}, units.Gram{}, units.Centigram{},
		units.Milligram{}, units.Microgram{}, units.Nanogram{},
	},
	units.DimAngle: {units.Degree{}, units.Radian{}},
	units.DimVolume: {
		units.CubicKilometer{}, units.CubicMeter{}, units.Liter{}, units.CubicCentimeter{},
		units.Milliliter{}, units.CubicMillimeter{}, units.CubicMicrometer{}, units.CubicNanometer{},
	},
	units.DimVelocity: {
		units.KilometerPerHour{}, units.MeterPerHour{}, units.CentimeterPerHour{},
		units.MillimeterPerHour{}, units.MicrometerPerHour{}, units.NanometerPerHour{},
		units.KilometerPerMinute{}, units.MeterPerMinute{}, units.CentimeterPerMinute{},
		units.MillimeterPerMinute{}, units.MicrometerPerMinute{}, units.NanometerPerMinute{},
		units.KilometerPerSecond{}, units.MeterPerSecond{}, units.CentimeterPerSecond{},
		units.MillimeterPerSecond{}, units.MicrometerPerSecond{}, units.NanometerPerSecond{},
	},
	units.DimAcceleration: {
		units.KilometerPerHourSquared{}, units.MeterPerHourSquared{}, units.CentimeterPerHourSquared{},
		units.MillimeterPerHourSquared{}, units.MicrometerPerHourSquared{}, units.NanometerPerHourSquared{},
		units.KilometerPerMinuteSquared{}, units.MeterPerMinuteSquared{}, units.CentimeterPerMinuteSquared{},
		units.MillimeterPerMinuteSquared{}, units.MicrometerPerMinuteSquared{}, units.NanometerPerMinuteSquared{},
		units.KilometerPerSecondSquared{}, units.MeterPerSecondSquared{}, units.CentimeterPerSecondSquared{},
		units.MillimeterPerSecondSquared{}, units.MicrometerPerSecondSquared{}, units.NanometerPerSecondSquared{},
	},
	units.DimForce:   {units.Kilonewton{}, units.Newton{}, units.Millinewton{}},
	units.DimImpulse: {units.KilonewtonSecond{}, units.NewtonSecond{}},
	units.DimEnergy: {
		units.Kilojoule{}, units.Joule{}, units.Centijoule{},
		units.Millijoule{}, units.Microjoule{}, units.Nanojoule{},
	},
	units.DimDensity: {
		units.KilogramPerCubicMeter{}, units.GramPerCubicCentimeter{}, units.GramPerLiter{},
	},
}

// recoverError runs f and returns the error it panicked with, or nil.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("non-error panic: %v", r)
			}
		}
	}()
	f()

	return nil
}

// requirePanicIs fails t unless f panics with an error matching target.
func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	err := recoverError(f)
	if err == nil {
		t.Fatalf("expected panic with %v", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("panic %v does not match %v", err, target)
	}
}

// relErr returns |got-want| / |want|, or |got| when want is zero.
func relErr(got, want float64) float64 {
	d := math.Abs(got - want)
	if want == 0 {
		return d
	}

	return d / math.Abs(want)
}
