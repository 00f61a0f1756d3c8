package rules

import "hyperlife/internal/core"

// Named rule families. All of them are life-like; "life" is the default.
var families = map[string]string{
	"highlife":   "B36/S23",
	"seeds":      "B2/S",
	"daynight":   "B3678/S34678",
	"replicator": "B1357/S1357",
	"life3d":     "B6/S567",
}

// Config holds parameters for a configurable life-like rule.
type Config struct {
	Notation string
}

// DefaultConfig returns the standard Life configuration.
func DefaultConfig() Config {
	return Config{Notation: "B3/S23"}
}

// FromMap populates a Config from a string map. The "bs" key carries B/S
// notation; malformed values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["bs"]; ok {
		if _, err := Parse(v); err == nil {
			c.Notation = v
		}
	}
	return c
}

func mustParse(notation string) *LifeLike {
	r, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return r
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Rule {
		if cfg == nil {
			return Conway
		}
		return mustParse(FromMap(cfg).Notation)
	})
	core.Register("lifelike", func(cfg map[string]string) core.Rule {
		return mustParse(FromMap(cfg).Notation)
	})
	for name, notation := range families {
		rule := mustParse(notation)
		core.Register(name, func(map[string]string) core.Rule { return rule })
	}
}
