// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/luminol/matrix"
	"github.com/pkg/errors"
)

type identityCmd struct {
	Size int `help:"matrix size, 1 to 4" default:"4"`
}

func (t identityCmd) Run(p *printer) error {
	const title = "identity"

	switch t.Size {
	case 1:
		return writeMatrix(p, title, matrix.Identity[float64, matrix.D1]())
	case 2:
		return writeMatrix(p, title, matrix.Identity[float64, matrix.D2]())
	case 3:
		return writeMatrix(p, title, matrix.Identity[float64, matrix.D3]())
	case 4:
		return writeMatrix(p, title, matrix.Identity[float64, matrix.D4]())
	default:
		return errors.Errorf("identity: size %d not in 1..4", t.Size)
	}
}
