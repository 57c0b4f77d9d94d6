// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/luminol/vector"
)

type vectorCmd struct {
	X float64 `arg:"" help:"x component"`
	Y float64 `arg:"" help:"y component"`
	Z float64 `arg:"" help:"z component"`
}

func (t vectorCmd) Run(p *printer) error {
	v := vector.Vec3(t.X, t.Y, t.Z)

	if err := p.heading("vector"); err != nil {
		return err
	}
	if err := p.text("components %s", p.row(v.Components())); err != nil {
		return err
	}
	if err := p.value("length", v.Length()); err != nil {
		return err
	}

	return p.text("normalized %s", p.row(v.Normalized().Components()))
}
