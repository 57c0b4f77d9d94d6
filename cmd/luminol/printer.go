// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/luminol/internal/config"
	"github.com/katalvlaran/luminol/matrix"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// printer writes command output with the configured precision. Headings are
// coloured when au has colours enabled.
type printer struct {
	out io.Writer
	cfg *config.Config
	au  aurora.Aurora
}

func newPrinter(out io.Writer, cfg *config.Config, colour bool) *printer {
	return &printer{out: out, cfg: cfg, au: aurora.NewAurora(colour)}
}

func (p *printer) heading(title string) error {
	_, err := fmt.Fprintln(p.out, p.au.Bold(p.au.Cyan(title)))

	return errors.Wrap(err, "write heading")
}

func (p *printer) value(label string, v float64) error {
	_, err := fmt.Fprintf(p.out, "%s %s\n", label, p.cfg.Format(v))

	return errors.Wrapf(err, "write %s", label)
}

func (p *printer) text(format string, args ...any) error {
	_, err := fmt.Fprintf(p.out, format+"\n", args...)

	return errors.Wrap(err, "write")
}

// row renders values as "[a, b, c]".
func (p *printer) row(values []float64) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = p.cfg.Format(v)
	}

	return "[" + strings.Join(cells, ", ") + "]"
}

// writeMatrix prints m under title, one row per line.
func writeMatrix[R, C matrix.Dim](p *printer, title string, m matrix.Matrix[float64, R, C]) error {
	if err := p.heading(title); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		r, err := m.Row(i)
		if err != nil {
			return errors.Wrapf(err, "%s row %d", title, i)
		}
		if err = p.text("%s", p.row(r)); err != nil {
			return err
		}
	}

	return nil
}
