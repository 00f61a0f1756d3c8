package app

import (
	"errors"
	"flag"
	"fmt"
	"runtime"

	"hyperlife/internal/lattice"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Pattern string
	Dims    int
	Rule    string
	TPS     int
	Workers int
	Paused  bool

	Soup    int
	Density float64
	Seed    int64

	Width   int
	Height  int
	Scale   int
	LogFile string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "gosper",
		Dims:    2,
		Rule:    "life",
		TPS:     15,
		Workers: runtime.NumCPU(),
		Density: 0.35,
		Seed:    42,
		Width:   160,
		Height:  100,
		Scale:   4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern name or path to a plate file")
	fs.IntVar(&c.Dims, "dims", c.Dims, "number of lattice axes")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation, e.g. B36/S23")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines evaluating each generation")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.IntVar(&c.Soup, "soup", c.Soup, "seed a random soup of this radius instead of a pattern (0 = off)")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for -soup")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -soup")
	fs.IntVar(&c.Width, "width", c.Width, "window width in cells (GUI only)")
	fs.IntVar(&c.Height, "height", c.Height, "window height in cells (GUI only)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write diagnostics to this file")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log ignored input")
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if !lattice.ValidDims(c.Dims) {
		errs = append(errs, fmt.Errorf("-dims must be in [1, %d], got %d", lattice.MaxDims, c.Dims))
	}
	if c.Dims == 1 {
		errs = append(errs, errors.New("seeding needs at least two axes, got -dims 1"))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("-tps must be positive, got %d", c.TPS))
	}
	if c.Soup < 0 {
		errs = append(errs, fmt.Errorf("-soup must not be negative, got %d", c.Soup))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("-density must be in [0, 1], got %g", c.Density))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("-width and -height must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("-scale must be positive, got %d", c.Scale))
	}
	return errors.Join(errs...)
}
