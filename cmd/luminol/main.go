// SPDX-License-Identifier: MIT

// Command luminol prints worked examples of the luminol matrix, units and
// vector packages.
//
// Output precision and colour come from LUMINOL_PRECISION and LUMINOL_COLOR.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/luminol/internal/config"
)

type cli struct {
	Identity identityCmd `cmd:"" help:"print an N×N identity matrix"`
	Square   squareCmd   `cmd:"" help:"print determinant, cofactor, adjugate and inverse of a square matrix"`
	Energy   energyCmd   `cmd:"" help:"print the kinetic energy of a moving mass"`
	Vector   vectorCmd   `cmd:"" help:"print the length and direction of a 3-vector"`
}

// newParser builds the command tree with p bound for every Run method.
func newParser(root *cli, p *printer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("luminol"),
		kong.Description("fixed-size matrix algebra and dimensional analysis"),
		kong.Bind(p),
	}, options...)

	return kong.New(root, options...)
}

func main() {
	var (
		err    error
		cfg    *config.Config
		parser *kong.Kong
		ctx    *kong.Context
		root   cli
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	if cfg, err = config.Load(); err != nil {
		log.Fatalln(err)
	}

	p := newPrinter(os.Stdout, cfg, cfg.Colorize(os.Stdout.Fd()))
	if parser, err = newParser(&root, p, kong.UsageOnError()); err != nil {
		log.Fatalln(err)
	}

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	if err = ctx.Run(); err != nil {
		log.Println(p.au.Red("ERROR"), err)
		os.Exit(1)
	}
}
