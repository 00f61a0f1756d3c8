package ui

import (
	"fmt"

	"hyperlife/internal/core"
)

// Lines formats a status snapshot for the HUD: a header per group followed by
// one "label  value" line per parameter.
func Lines(snap core.ParameterSnapshot, depth int) []string {
	var out []string
	for _, g := range snap.Groups {
		if g.Name != "" {
			out = append(out, g.Name)
		}
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %-12s %s", p.Label, p.Value))
		}
	}
	return append(out, fmt.Sprintf("  %-12s %d", "Depth axis", depth))
}
