package rules

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"hyperlife/internal/core"
)

func TestConwayTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := Conway.Next(core.Alive, n); got != wantAlive {
			t.Fatalf("alive with %d neighbors -> %v, want %v", n, got, wantAlive)
		}
		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := Conway.Next(core.Dead, n); got != wantDead {
			t.Fatalf("dead with %d neighbors -> %v, want %v", n, got, wantDead)
		}
	}
	if s := fmt.Sprint(Conway); s != "B3/S23" {
		t.Fatalf("Conway prints as %q", s)
	}
}

func TestParsedLifeMatchesConway(t *testing.T) {
	r, err := Parse("B3/S23")
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range []core.State{core.Dead, core.Alive} {
		for n := 0; n <= 26; n++ {
			if r.Next(st, n) != Conway.Next(st, n) {
				t.Fatalf("mismatch for %v with %d neighbors", st, n)
			}
		}
	}
}

func TestParseVariants(t *testing.T) {
	tests := []struct {
		in      string
		birth   []int
		survive []int
		out     string
	}{
		{"B36/S23", []int{3, 6}, []int{2, 3}, "B36/S23"},
		{"s23/b3", []int{3}, []int{2, 3}, "B3/S23"},
		{"B2/S", []int{2}, nil, "B2/S"},
		{"B6/S5,6,7", []int{6}, []int{5, 6, 7}, "B6/S567"},
		{"B13,14/S4", []int{13, 14}, []int{4}, "B13,14/S4"},
		{"B10,/S4", []int{10}, []int{4}, "B10,/S4"},
		{"B5,6,/S26", []int{5, 6}, []int{26}, "B56/S26,"},
	}
	for _, tc := range tests {
		r, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if !slices.Equal(r.Birth(), tc.birth) || !slices.Equal(r.Survive(), tc.survive) {
			t.Fatalf("Parse(%q) = B%v S%v", tc.in, r.Birth(), r.Survive())
		}
		if r.String() != tc.out {
			t.Fatalf("Parse(%q).String() = %q, want %q", tc.in, r.String(), tc.out)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S2/S3", "B3/B3", "X3/S23", "Bx/S23", "B3/", "B-1,2/S3", "B,/S",
		"B3,1000000000000000000/S23", fmt.Sprintf("B3/S2,%d", MaxCount+1)} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Parse(%q) error = %v, want ErrSyntax", in, err)
		}
	}
}

func TestLookup(t *testing.T) {
	life, err := Lookup("life")
	if err != nil {
		t.Fatal(err)
	}
	if life != Conway {
		t.Fatal("life should resolve to the Conway rule")
	}

	hl, err := Lookup("highlife")
	if err != nil {
		t.Fatal(err)
	}
	if hl.Next(core.Dead, 6) != core.Alive {
		t.Fatal("highlife births on six")
	}

	custom, err := Lookup("B1/S1")
	if err != nil {
		t.Fatal(err)
	}
	if custom.Next(core.Dead, 1) != core.Alive {
		t.Fatal("custom notation not honoured")
	}

	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if _, err := Lookup("B9x/S"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	if c := FromMap(nil); c.Notation != "B3/S23" {
		t.Fatalf("default notation = %q", c.Notation)
	}
	if c := FromMap(map[string]string{"bs": "B36/S23"}); c.Notation != "B36/S23" {
		t.Fatalf("notation = %q", c.Notation)
	}
	if c := FromMap(map[string]string{"bs": "garbage"}); c.Notation != "B3/S23" {
		t.Fatalf("bad notation should fall back, got %q", c.Notation)
	}
	r := core.Rules()["lifelike"](map[string]string{"bs": "B2/S"})
	if r.Next(core.Alive, 2) != core.Dead || r.Next(core.Dead, 2) != core.Alive {
		t.Fatal("lifelike factory ignored configuration")
	}
	for _, name := range []string{"life", "highlife", "seeds", "daynight", "replicator", "life3d", "lifelike"} {
		if !slices.Contains(core.RuleNames(), name) {
			t.Fatalf("rule %q not registered", name)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	subjects := []fmt.Stringer{
		NewLifeLike([]int{10}, []int{4}),
		NewLifeLike([]int{5, 26}, nil),
		NewLifeLike([]int{MaxCount}, []int{0, 80}),
	}
	for _, name := range core.RuleNames() {
		r, ok := core.Rules()[name](nil).(fmt.Stringer)
		if !ok {
			t.Fatalf("rule %q cannot render itself", name)
		}
		subjects = append(subjects, r)
	}
	for _, r := range subjects {
		notation := r.String()
		back, err := Parse(notation)
		if err != nil {
			t.Fatalf("Parse(%q): %v", notation, err)
		}
		if back.String() != notation {
			t.Fatalf("Parse(%q).String() = %q", notation, back.String())
		}
		orig := r.(core.Rule)
		for _, st := range []core.State{core.Dead, core.Alive} {
			for n := 0; n <= 80; n++ {
				if back.Next(st, n) != orig.Next(st, n) {
					t.Fatalf("%s: %v with %d neighbours differs after round trip", notation, st, n)
				}
			}
		}
	}
}

func TestNewLifeLikeIgnoresImpossibleCounts(t *testing.T) {
	r := NewLifeLike([]int{3, -1, MaxCount + 1, 1 << 60}, []int{2})
	if !slices.Equal(r.Birth(), []int{3}) {
		t.Fatalf("Birth = %v", r.Birth())
	}
}
