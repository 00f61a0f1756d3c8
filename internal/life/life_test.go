package life

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"hyperlife/internal/core"
	"hyperlife/internal/lattice"
	"hyperlife/internal/rules"
)

func mustPlate(t *testing.T, dims int, rows ...string) *Life {
	t.Helper()
	l, err := FromPlate(dims, rows, nil)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func pts(dims int, pairs ...[2]int) []lattice.Point {
	out := make([]lattice.Point, 0, len(pairs))
	for _, p := range pairs {
		pt, err := lattice.Pair(dims, p[0], p[1])
		if err != nil {
			panic(err)
		}
		out = append(out, pt)
	}
	return lattice.NewSet(out...).Points()
}

func TestExtinctionIsAbsorbing(t *testing.T) {
	for d := 1; d <= 4; d++ {
		l, err := New(d, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		next := l.Advance()
		if next.ActiveCells() != 0 {
			t.Fatalf("d=%d: empty world came alive", d)
		}
		if next.Advance().ActiveCells() != 0 {
			t.Fatalf("d=%d: empty world came alive on second step", d)
		}
		if next.Generation() != 1 {
			t.Fatalf("generation = %d", next.Generation())
		}
	}
}

func TestSingleCellDies(t *testing.T) {
	l := mustPlate(t, 2, "#")
	if got := l.Advance().ActiveCells(); got != 0 {
		t.Fatalf("isolated cell should die, population %d", got)
	}
}

func TestBlockIsStill(t *testing.T) {
	for d := 2; d <= 4; d++ {
		l := mustPlate(t, d, "##", "##")
		next := l.Advance()
		if !slices.Equal(next.Cells(), l.Cells()) {
			t.Fatalf("d=%d: block changed to %v", d, next.Cells())
		}
		if d > 2 && next.ActiveCells() != 4 {
			t.Fatalf("d=%d: population %d", d, next.ActiveCells())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	row := strings.Repeat(".", 4) + "###"
	rows := []string{"", "", "", "", "", row}
	l := mustPlate(t, 2, rows...)

	horizontal := pts(2, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	vertical := pts(2, [2]int{4, 5}, [2]int{5, 5}, [2]int{6, 5})
	if !slices.Equal(l.Cells(), horizontal) {
		t.Fatalf("seed = %v", l.Cells())
	}

	l1 := l.Advance()
	if !slices.Equal(l1.Cells(), vertical) {
		t.Fatalf("generation 1 = %v, want %v", l1.Cells(), vertical)
	}
	l2 := l1.Advance()
	if !slices.Equal(l2.Cells(), horizontal) {
		t.Fatalf("generation 2 = %v, want %v", l2.Cells(), horizontal)
	}
	if l2.Generation() != 2 {
		t.Fatalf("generation counter = %d", l2.Generation())
	}
}

func TestAdvanceIsDeterministicAndPure(t *testing.T) {
	l, err := Soup(2, 12, 0.4, 99, nil, WithWorkers(8))
	if err != nil {
		t.Fatal(err)
	}
	before := l.Cells()

	a := l.Advance()
	b := l.Advance()
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("two advances of the same generation differ")
	}
	if !slices.Equal(l.Cells(), before) {
		t.Fatal("Advance mutated its receiver")
	}

	serial, err := New(2, before, nil, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(serial.Advance().Cells(), a.Cells()) {
		t.Fatal("worker count changed the result")
	}
}

func TestFrontierContainsEveryChange(t *testing.T) {
	for _, d := range []int{2, 3} {
		l, err := Soup(d, 6, 0.35, int64(d), nil)
		if err != nil {
			t.Fatal(err)
		}
		for gen := 0; gen < 5; gen++ {
			frontier := l.Frontier()
			next := l.Advance()
			for _, p := range l.Cells() {
				if next.Get(p) != core.Alive && !frontier.Has(p) {
					t.Fatalf("d=%d gen=%d: death of %v outside frontier", d, gen, p)
				}
			}
			for _, p := range next.Cells() {
				if l.Get(p) != core.Alive && !frontier.Has(p) {
					t.Fatalf("d=%d gen=%d: birth of %v outside frontier", d, gen, p)
				}
			}
			l = next
		}
	}
}

func TestFrontierSize(t *testing.T) {
	l := mustPlate(t, 3, "#")
	if got := l.Frontier().Len(); got != 27 {
		t.Fatalf("frontier of a single 3D cell = %d, want 27", got)
	}
	empty, _ := New(3, nil, nil)
	if empty.Frontier().Len() != 0 {
		t.Fatal("empty world must have an empty frontier")
	}
}

func TestCustomRule(t *testing.T) {
	// Seeds: every live cell dies, births on exactly two neighbours.
	seeds, err := rules.Parse("B2/S")
	if err != nil {
		t.Fatal(err)
	}
	l, err := FromPlate(2, []string{"##"}, seeds)
	if err != nil {
		t.Fatal(err)
	}
	want := pts(2, [2]int{-1, 0}, [2]int{-1, 1}, [2]int{1, 0}, [2]int{1, 1})
	if got := l.Advance().Cells(); !slices.Equal(got, want) {
		t.Fatalf("seeds step = %v, want %v", got, want)
	}

	everything := core.RuleFunc(func(core.State, int) core.State { return core.Alive })
	l, err = FromPlate(2, []string{"#"}, everything)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Advance().ActiveCells(); got != 9 {
		t.Fatalf("always-alive rule should fill the frontier, got %d", got)
	}
	if RuleName(everything) != "custom" || RuleName(seeds) != "B2/S" {
		t.Fatal("RuleName mismatch")
	}
}

func TestNeighborCountExcludesSelf(t *testing.T) {
	var counts []int
	spy := core.RuleFunc(func(cur core.State, n int) core.State {
		if cur == core.Alive {
			counts = append(counts, n)
		}
		return core.Dead
	})
	l, err := FromPlate(2, []string{"#"}, spy, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	l.Advance()
	if !slices.Equal(counts, []int{0}) {
		t.Fatalf("live cell saw neighbour counts %v", counts)
	}
}

func TestNewValidatesDims(t *testing.T) {
	if _, err := New(0, nil, nil); !errors.Is(err, lattice.ErrDims) {
		t.Fatalf("expected ErrDims, got %v", err)
	}
	if _, err := New(lattice.MaxDims+1, nil, nil); !errors.Is(err, lattice.ErrDims) {
		t.Fatalf("expected ErrDims, got %v", err)
	}
	_, err := New(3, []lattice.Point{lattice.MustPoint(1, 2)}, nil)
	if !errors.Is(err, ErrMixedDims) {
		t.Fatalf("expected ErrMixedDims, got %v", err)
	}
	if _, err := FromPlate(1, []string{"#"}, nil); !errors.Is(err, ErrPlateDims) {
		t.Fatalf("expected ErrPlateDims, got %v", err)
	}
}

func TestHigherDimensionalEmbedding(t *testing.T) {
	l := mustPlate(t, 4, ".#", "#")
	want := []lattice.Point{lattice.MustPoint(0, 1, 0, 0), lattice.MustPoint(1, 0, 0, 0)}
	if !slices.Equal(l.Cells(), want) {
		t.Fatalf("cells = %v", l.Cells())
	}
	if l.Get(lattice.MustPoint(0, 1)) != core.Dead {
		t.Fatal("a 2D point must not match a 4D cell")
	}
}

func TestAdvanceContextCancelled(t *testing.T) {
	l := mustPlate(t, 2, "###")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	next, err := l.AdvanceContext(ctx)
	if !errors.Is(err, context.Canceled) || next != nil {
		t.Fatalf("AdvanceContext = %v, %v", next, err)
	}
	if l.ActiveCells() != 3 {
		t.Fatal("cancelled step must leave the receiver intact")
	}
}

func TestParsePlate(t *testing.T) {
	in := "!Name: test\r\n.#.\r\n!##\n\n#.#\n"
	rows, err := ParsePlate(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(rows, []string{".#.", "", "#.#"}) {
		t.Fatalf("rows = %q", rows)
	}
}

func TestParametersSnapshot(t *testing.T) {
	l := mustPlate(t, 3, "##", "##").Advance()
	snap := l.Parameters()
	want := map[string]string{"dims": "3", "rule": "B3/S23", "generation": "1", "population": "4", "frontier": "48"}
	for key, v := range want {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != v {
			t.Fatalf("%s = %+v, want %s", key, p, v)
		}
	}
}

func TestSoupDeterministic(t *testing.T) {
	a, err := Soup(3, 5, 0.5, 11, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Soup(3, 5, 0.5, 11, nil)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same soup seed differs")
	}
	for _, p := range a.Cells() {
		if p.Axis(2) != 0 || p.Axis(0) < -5 || p.Axis(0) > 5 {
			t.Fatalf("soup cell %v outside its square", p)
		}
	}
	full, _ := Soup(2, 1, 1, 0, nil)
	if full.ActiveCells() != 9 {
		t.Fatalf("density 1 soup population = %d", full.ActiveCells())
	}
}

func TestParsePlateWideRow(t *testing.T) {
	row := strings.Repeat(".", 200_000) + "#"
	rows, err := ParsePlate(strings.NewReader(row + "\n#\n"))
	if err != nil {
		t.Fatal(err)
	}
	l, err := FromPlate(2, rows, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := pts(2, [2]int{0, 200_000}, [2]int{1, 0})
	if !slices.Equal(l.Cells(), want) {
		t.Fatalf("cells = %v", l.Cells())
	}
}
