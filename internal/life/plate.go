package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"hyperlife/internal/core"
	"hyperlife/internal/lattice"
)

// ErrPlateDims reports a plate loaded into a simulation with fewer than two
// axes.
var ErrPlateDims = errors.New("life: plates need at least two axes")

// AliveGlyph marks a live cell in a plate. Every other character is dead.
const AliveGlyph = '#'

// PlatePoints converts text rows into live points: row index becomes axis 0,
// column index axis 1, and all further axes are zero.
func PlatePoints(dims int, rows []string) ([]lattice.Point, error) {
	if dims < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlateDims, dims)
	}
	var points []lattice.Point
	for r, row := range rows {
		col := 0
		for _, ch := range row {
			if ch == AliveGlyph {
				p, err := lattice.Pair(dims, r, col)
				if err != nil {
					return nil, err
				}
				points = append(points, p)
			}
			col++
		}
	}
	return points, nil
}

// FromPlate builds a simulation seeded from text rows (see PlatePoints).
func FromPlate(dims int, rows []string, rule core.Rule, opts ...Option) (*Life, error) {
	points, err := PlatePoints(dims, rows)
	if err != nil {
		return nil, err
	}
	return New(dims, points, rule, opts...)
}

// maxPlateRow bounds the length of a single plate line.
const maxPlateRow = 16 << 20

// ParsePlate reads a plate from r, one row per line. Unlike PlatePoints, which
// treats every character other than AliveGlyph as dead, ParsePlate drops lines
// starting with '!' as comments: such a line contributes no cells, even if it
// contains '#', and does not count as a row.
func ParsePlate(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxPlateRow)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("life: reading plate: %w", err)
	}
	return rows, nil
}

// Soup seeds a random square of side 2*radius+1 centred on the origin of
// axes 0 and 1, each cell alive with the given probability. The same seed
// always yields the same soup.
func Soup(dims, radius int, density float64, seed int64, rule core.Rule, opts ...Option) (*Life, error) {
	if dims < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlateDims, dims)
	}
	rng := core.NewRNG(seed)
	var points []lattice.Point
	for a0 := -radius; a0 <= radius; a0++ {
		for a1 := -radius; a1 <= radius; a1++ {
			if !rng.Chance(density) {
				continue
			}
			p, err := lattice.Pair(dims, a0, a1)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
	}
	return New(dims, points, rule, opts...)
}
