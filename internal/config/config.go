// SPDX-License-Identifier: MIT

// Package config holds the environment-driven settings of the luminol CLI.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
)

// Colour modes accepted by LUMINOL_COLOR.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MaxPrecision is the number of significant digits that round-trips a float64.
const MaxPrecision = 17

var (
	// ErrPrecision indicates LUMINOL_PRECISION outside 1..MaxPrecision.
	ErrPrecision = errors.New("config: precision out of range")
	// ErrColor indicates an unknown LUMINOL_COLOR mode.
	ErrColor = errors.New("config: unknown color mode")
)

// Config is read from the environment once at start-up.
type Config struct {
	// Precision is the number of significant digits printed per value.
	Precision int `env:"LUMINOL_PRECISION" envDefault:"6"`
	// Color is one of auto, always or never.
	Color string `env:"LUMINOL_COLOR" envDefault:"auto"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the ranges Load cannot express with struct tags.
func (c *Config) Validate() error {
	if c.Precision < 1 || c.Precision > MaxPrecision {
		return fmt.Errorf("LUMINOL_PRECISION=%d: %w", c.Precision, ErrPrecision)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("LUMINOL_COLOR=%q: %w", c.Color, ErrColor)
	}
}

// Colorize reports whether output written to the file descriptor fd should
// carry ANSI colour codes.
func (c *Config) Colorize(fd uintptr) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// Format renders v with the configured number of significant digits.
func (c *Config) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', c.Precision, 64)
}
