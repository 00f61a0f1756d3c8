// Package rules provides transition rules of the form
// next = f(current state, live-neighbour count).
package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hyperlife/internal/core"
	"hyperlife/internal/lattice"
)

var (
	// ErrSyntax reports malformed birth/survival notation.
	ErrSyntax = errors.New("rules: bad B/S notation")
	// ErrUnknown reports a rule name that is neither registered nor B/S notation.
	ErrUnknown = errors.New("rules: unknown rule")
)

// Conway is the standard Game of Life rule: a live cell with two or three
// live neighbours survives, a dead cell with exactly three is born.
var Conway core.Rule = conway{}

type conway struct{}

func (conway) Next(cur core.State, neighbors int) core.State {
	switch cur {
	case core.Alive:
		if neighbors == 2 || neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	default:
		if neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
}

func (conway) String() string { return "B3/S23" }

// LifeLike is an outer-totalistic rule given by the neighbour counts that
// cause a birth and the counts that let a live cell survive. It is read-only
// after construction and safe for concurrent use.
type LifeLike struct {
	birth   []bool
	survive []bool
}

// MaxCount is the largest neighbour count any cell can observe.
var MaxCount = lattice.NeighborCount(lattice.MaxDims)

// NewLifeLike builds a rule from explicit birth and survival counts.
// Counts outside [0, MaxCount] are ignored.
func NewLifeLike(birth, survive []int) *LifeLike {
	return &LifeLike{birth: countTable(birth), survive: countTable(survive)}
}

func countTable(counts []int) []bool {
	top := -1
	for _, c := range counts {
		if c <= MaxCount {
			top = max(top, c)
		}
	}
	table := make([]bool, top+1)
	for _, c := range counts {
		if c >= 0 && c <= MaxCount {
			table[c] = true
		}
	}
	return table
}

func lookup(table []bool, n int) bool {
	return n >= 0 && n < len(table) && table[n]
}

// Next implements core.Rule.
func (r *LifeLike) Next(cur core.State, neighbors int) core.State {
	if cur == core.Alive {
		if lookup(r.survive, neighbors) {
			return core.Alive
		}
		return core.Dead
	}
	if lookup(r.birth, neighbors) {
		return core.Alive
	}
	return core.Dead
}

// Birth returns the neighbour counts that bring a dead cell to life.
func (r *LifeLike) Birth() []int { return tableCounts(r.birth) }

// Survive returns the neighbour counts that keep a live cell alive.
func (r *LifeLike) Survive() []int { return tableCounts(r.survive) }

func tableCounts(table []bool) []int {
	var out []int
	for n, ok := range table {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

// String renders the rule in B/S notation, e.g. "B3/S23". Counts above nine
// are comma separated, and a lone count above nine keeps a trailing comma
// ("B10,/S4") so that Parse reads it back unchanged.
func (r *LifeLike) String() string {
	return "B" + formatCounts(r.Birth()) + "/S" + formatCounts(r.Survive())
}

func formatCounts(counts []int) string {
	sep := ""
	for _, c := range counts {
		if c > 9 {
			sep = ","
			break
		}
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	if sep != "" && len(parts) == 1 {
		return parts[0] + sep
	}
	return strings.Join(parts, sep)
}

// Parse reads B/S notation such as "B3/S23", "b36/s23", "S23/B3" or, for
// counts above nine, "B5,6,7/S4,15" and "B10,/S4". Either half may list no
// counts ("B2/S"). Counts above MaxCount are rejected.
func Parse(notation string) (*LifeLike, error) {
	halves := strings.Split(strings.TrimSpace(notation), "/")
	if len(halves) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, notation)
	}
	var birth, survive []int
	var seenB, seenS bool
	for _, half := range halves {
		if half == "" {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, notation)
		}
		counts, err := parseCounts(half[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, notation, err)
		}
		switch half[0] {
		case 'B', 'b':
			if seenB {
				return nil, fmt.Errorf("%w: %q: birth listed twice", ErrSyntax, notation)
			}
			seenB, birth = true, counts
		case 'S', 's':
			if seenS {
				return nil, fmt.Errorf("%w: %q: survival listed twice", ErrSyntax, notation)
			}
			seenS, survive = true, counts
		default:
			return nil, fmt.Errorf("%w: %q", ErrSyntax, notation)
		}
	}
	return NewLifeLike(birth, survive), nil
}

func parseCounts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(strings.TrimSuffix(s, ","), ",")
	} else {
		fields = strings.Split(s, "")
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad count %q", f)
		}
		if n > MaxCount {
			return nil, fmt.Errorf("count %d exceeds %d", n, MaxCount)
		}
		out = append(out, n)
	}
	return out, nil
}

// Lookup resolves a registered rule name or, failing that, B/S notation.
func Lookup(name string) (core.Rule, error) {
	if f, ok := core.Rules()[name]; ok {
		return f(nil), nil
	}
	if strings.Contains(name, "/") {
		r, err := Parse(name)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}
