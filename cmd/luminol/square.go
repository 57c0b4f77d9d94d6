// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/luminol/matrix"
	"github.com/pkg/errors"
)

type squareCmd struct {
	Rows string `help:"rows separated by ';', cells by ','" required:""`
}

func (t squareCmd) Run(p *printer) error {
	rows, err := parseRows(t.Rows)
	if err != nil {
		return err
	}

	switch len(rows) {
	case 2:
		return report[matrix.D2](p, rows)
	case 3:
		return report[matrix.D3](p, rows)
	case 4:
		return report[matrix.D4](p, rows)
	default:
		return errors.Errorf("square: %d rows, want 2 to 4", len(rows))
	}
}

// parseRows reads "a,b;c,d" into [][]float64. Blank input and empty rows are
// errors; ragged rows are left for matrix.New to reject.
func parseRows(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("square: no rows")
	}

	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "square: cell (%d,%d)", i, j)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// report prints the square-matrix algebra of rows as an N×N matrix.
func report[N matrix.Dim](p *printer, rows [][]float64) error {
	m, err := matrix.New[N, N](rows)
	if err != nil {
		return errors.Wrap(err, "square")
	}

	det := matrix.Determinant(m)
	if err = writeMatrix(p, "matrix", m); err != nil {
		return err
	}
	if err = p.value("determinant", det); err != nil {
		return err
	}
	if err = writeMatrix(p, "cofactor", matrix.Cofactor(m)); err != nil {
		return err
	}
	if err = writeMatrix(p, "adjugate", matrix.Adjugate(m)); err != nil {
		return err
	}
	if det == 0 {
		return p.text("singular: no inverse")
	}

	return writeMatrix(p, "inverse", matrix.Inverse(m))
}
