// Package life runs outer-totalistic cellular automata on an unbounded
// lattice of any supported dimensionality, storing only live cells.
package life

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"hyperlife/internal/core"
	"hyperlife/internal/lattice"
	"hyperlife/internal/rules"
)

// ErrMixedDims reports a seed point whose dimensionality differs from the
// simulation's.
var ErrMixedDims = errors.New("life: point dimensionality mismatch")

// Life is one generation of a simulation. It is never modified after
// construction: Advance returns a new value and leaves the receiver intact, so
// a Life may be shared freely between goroutines.
type Life struct {
	dims       int
	alive      lattice.Set
	rule       core.Rule
	workers    int
	generation int
}

// Option customises a simulation at construction time.
type Option func(*Life)

// WithWorkers bounds the number of goroutines evaluating a generation.
// Values below one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(l *Life) { l.workers = n }
}

// New builds a simulation over dims axes seeded with the given live points.
// A nil rule selects standard Conway rules.
func New(dims int, seed []lattice.Point, rule core.Rule, opts ...Option) (*Life, error) {
	if !lattice.ValidDims(dims) {
		return nil, fmt.Errorf("life: %w: %d", lattice.ErrDims, dims)
	}
	alive := make(lattice.Set, len(seed))
	for _, p := range seed {
		if p.Dims() != dims {
			return nil, fmt.Errorf("%w: %v in a %d-dimensional simulation", ErrMixedDims, p, dims)
		}
		alive.Add(p)
	}
	if rule == nil {
		rule = rules.Conway
	}
	l := &Life{dims: dims, alive: alive, rule: rule}
	for _, opt := range opts {
		opt(l)
	}
	if l.workers < 1 {
		l.workers = runtime.GOMAXPROCS(0)
	}
	return l, nil
}

// Dims returns the dimensionality shared by every point of the simulation.
func (l *Life) Dims() int { return l.dims }

// Rule returns the transition rule.
func (l *Life) Rule() core.Rule { return l.rule }

// Generation counts the steps taken since the seed generation.
func (l *Life) Generation() int { return l.generation }

// Get reports whether p is alive. Points of another dimensionality are dead.
func (l *Life) Get(p lattice.Point) core.State {
	if l.alive.Has(p) {
		return core.Alive
	}
	return core.Dead
}

// ActiveCells returns the population.
func (l *Life) ActiveCells() int { return l.alive.Len() }

// Cells returns the live points in lexicographic order.
func (l *Life) Cells() []lattice.Point { return l.alive.Points() }

// Frontier returns every point whose state could be non-dead next
// generation: the live cells together with all of their neighbours.
func (l *Life) Frontier() lattice.Set {
	offs := lattice.Stencil(l.dims)
	frontier := make(lattice.Set, len(l.alive)*len(offs)/2)
	for p := range l.alive {
		for _, off := range offs {
			frontier.Add(p.Add(off))
		}
	}
	return frontier
}

// Advance computes the next generation.
func (l *Life) Advance() *Life {
	next, _ := l.AdvanceContext(context.Background())
	return next
}

// chunksPerWorker oversubscribes the pool so uneven chunks balance out.
const chunksPerWorker = 4

// AdvanceContext computes the next generation, spreading frontier points over
// a bounded pool of goroutines. It returns ctx.Err() if ctx is cancelled
// before the generation completes; the receiver is never affected.
func (l *Life) AdvanceContext(ctx context.Context) (*Life, error) {
	frontier := l.Frontier()
	candidates := make([]lattice.Point, 0, len(frontier))
	for p := range frontier {
		candidates = append(candidates, p)
	}

	chunk := (len(candidates) + l.workers*chunksPerWorker - 1) / (l.workers * chunksPerWorker)
	chunk = max(chunk, 1)
	results := make([][]lattice.Point, (len(candidates)+chunk-1)/chunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i := range results {
		lo := i * chunk
		hi := min(lo+chunk, len(candidates))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = l.evaluate(candidates[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	alive := make(lattice.Set, total)
	for _, r := range results {
		for _, p := range r {
			alive.Add(p)
		}
	}
	return &Life{
		dims:       l.dims,
		alive:      alive,
		rule:       l.rule,
		workers:    l.workers,
		generation: l.generation + 1,
	}, nil
}

// evaluate applies the rule to each point and returns those that live.
func (l *Life) evaluate(points []lattice.Point) []lattice.Point {
	ring := lattice.Ring(l.dims)
	var out []lattice.Point
	for _, p := range points {
		n := 0
		for _, off := range ring {
			if l.alive.Has(p.Add(off)) {
				n++
			}
		}
		if l.rule.Next(l.Get(p), n) == core.Alive {
			out = append(out, p)
		}
	}
	return out
}

// Parameters reports the simulation's status values.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			core.IntParam("dims", "Dimensions", l.dims),
			core.StringParam("rule", "Rule", RuleName(l.rule)),
			core.IntParam("generation", "Generation", l.generation),
			core.IntParam("population", "Population", l.ActiveCells()),
			core.IntParam("frontier", "Frontier", l.Frontier().Len()),
		},
	}}}
}

// RuleName renders a rule for display, falling back to "custom" for rules
// that do not describe themselves.
func RuleName(r core.Rule) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return "custom"
}
