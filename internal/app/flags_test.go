package app

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"hyperlife/internal/patterns"
	"hyperlife/internal/rules"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-dims", "4", "-rule", "B36/S23", "-pattern", "glider", "-tps", "30", "-paused"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dims != 4 || cfg.Rule != "B36/S23" || cfg.Pattern != "glider" || cfg.TPS != 30 || !cfg.Paused {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Scale != 4 || cfg.Seed != 42 {
		t.Fatalf("unrelated defaults changed: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cfg := NewConfig()
	cfg.Dims = 11
	cfg.TPS = 0
	cfg.Density = 2
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, frag := range []string{"-dims", "-tps", "-density"} {
		if !strings.Contains(err.Error(), frag) {
			t.Fatalf("error %q does not mention %s", err, frag)
		}
	}
	cfg = NewConfig()
	cfg.Dims = 1
	if cfg.Validate() == nil {
		t.Fatal("one axis cannot be seeded from a plate")
	}
}

func TestBuild(t *testing.T) {
	cfg := NewConfig()
	cfg.Dims = 3
	l, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.Dims() != 3 || l.ActiveCells() != 36 {
		t.Fatalf("built %d-D world with %d cells", l.Dims(), l.ActiveCells())
	}

	cfg.Soup = 3
	cfg.Density = 1
	l, err = cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.ActiveCells() != 49 {
		t.Fatalf("soup population = %d", l.ActiveCells())
	}

	cfg = NewConfig()
	cfg.Rule = "nonsense"
	if _, err := cfg.Build(); !errors.Is(err, rules.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	cfg = NewConfig()
	cfg.Pattern = "does-not-exist"
	if _, err := cfg.Build(); !errors.Is(err, patterns.ErrUnknown) {
		t.Fatalf("expected patterns.ErrUnknown, got %v", err)
	}
}
