// Command census advances a pattern in several dimensionalities side by side
// and prints how its population and frontier evolve.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"hyperlife/internal/life"
	"hyperlife/internal/patterns"
	"hyperlife/internal/rules"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	*l = (*l)[:0]
	for _, field := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("bad dimensionality %q", field)
		}
		*l = append(*l, v)
	}
	return nil
}

type sample struct {
	gen        int
	population int
	frontier   int
}

type run struct {
	dims    int
	samples []sample
	elapsed time.Duration
}

func main() {
	pattern := flag.String("pattern", "rpentomino", "built-in pattern name or plate file")
	ruleName := flag.String("rule", "life", "rule name or B/S notation")
	gens := flag.Int("gens", 100, "generations to simulate")
	every := flag.Int("every", 10, "sampling interval in generations")
	workers := flag.Int("workers", runtime.NumCPU(), "goroutines per generation")
	parallel := flag.Int("parallel", 2, "dimensionalities simulated at once")
	dims := intList{2, 3}
	flag.Var(&dims, "dims", "comma-separated dimensionalities to compare")
	flag.Parse()

	rule, err := rules.Lookup(*ruleName)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := patterns.Load(*pattern)
	if err != nil {
		log.Fatal(err)
	}
	if *every <= 0 {
		*every = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runs := make([]run, len(dims))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*parallel, 1))
	for i, d := range dims {
		g.Go(func() error {
			l, err := life.FromPlate(d, rows, rule, life.WithWorkers(*workers))
			if err != nil {
				return fmt.Errorf("%d axes: %w", d, err)
			}
			r := run{dims: d}
			start := time.Now()
			for gen := 0; gen <= *gens; gen++ {
				if gen%*every == 0 || gen == *gens {
					r.samples = append(r.samples, sample{gen: gen, population: l.ActiveCells(), frontier: l.Frontier().Len()})
				}
				if gen == *gens {
					break
				}
				if l, err = l.AdvanceContext(gctx); err != nil {
					return err
				}
			}
			r.elapsed = time.Since(start)
			runs[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Pattern %s, rule %s, %d generations\n", *pattern, life.RuleName(rule), *gens)
	for _, r := range runs {
		fmt.Printf("\n%d axes (%s):\n", r.dims, r.elapsed.Round(time.Millisecond))
		fmt.Printf("  %6s %10s %10s\n", "gen", "population", "frontier")
		for _, s := range r.samples {
			fmt.Printf("  %6d %10d %10d\n", s.gen, s.population, s.frontier)
		}
	}
}
