package app

import (
	"fmt"

	"hyperlife/internal/life"
	"hyperlife/internal/patterns"
	"hyperlife/internal/rules"
)

// Build validates the configuration and constructs the seed generation it
// describes.
func (c *Config) Build() (*life.Life, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rule, err := rules.Lookup(c.Rule)
	if err != nil {
		return nil, err
	}
	opts := []life.Option{life.WithWorkers(c.Workers)}
	if c.Soup > 0 {
		return life.Soup(c.Dims, c.Soup, c.Density, c.Seed, rule, opts...)
	}
	rows, err := patterns.Load(c.Pattern)
	if err != nil {
		return nil, err
	}
	l, err := life.FromPlate(c.Dims, rows, rule, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", c.Pattern, err)
	}
	return l, nil
}
