// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/luminol/units"
	"github.com/pkg/errors"
)

type energyCmd struct {
	MassKg   float64 `name:"mass-kg" help:"mass in kilograms" required:""`
	SpeedMps float64 `name:"speed-mps" help:"speed in metres per second" required:""`
}

func (t energyCmd) Run(p *printer) error {
	if t.MassKg < 0 {
		return errors.Errorf("energy: negative mass %v kg", t.MassKg)
	}

	m := units.New[units.Kilograms](t.MassKg)
	v := units.New[units.MetersPerSecond](t.SpeedMps)

	if err := p.heading("kinetic energy"); err != nil {
		return err
	}
	if err := p.text("%s at %s", m, v); err != nil {
		return err
	}
	if err := p.value(units.Joule{}.Symbol(), units.KineticEnergy[units.Joule](m, v).Value()); err != nil {
		return err
	}

	return p.value(units.Kilojoule{}.Symbol(), units.KineticEnergy[units.Kilojoule](m, v).Value())
}
