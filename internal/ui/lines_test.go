package ui

import (
	"slices"
	"testing"

	"hyperlife/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{core.IntParam("generation", "Generation", 3)}},
		{Params: []core.Parameter{core.BoolParam("paused", "Paused", false)}},
	}}
	want := []string{
		"Simulation",
		"  Generation   3",
		"  Paused       false",
		"  Depth axis   2",
	}
	if got := Lines(snap, 2); !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}
