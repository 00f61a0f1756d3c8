package lattice

import "sync"

type stencil struct {
	once sync.Once
	all  []Point // 3^d offsets, base-3 order, centre included
	ring []Point // all minus the zero offset
}

var stencils [MaxDims + 1]stencil

// NeighborCount returns 3^d - 1, the size of the Moore neighbourhood in d
// dimensions.
func NeighborCount(d int) int { return pow3(d) - 1 }

func pow3(d int) int {
	n := 1
	for i := 0; i < d; i++ {
		n *= 3
	}
	return n
}

// Stencil returns the 3^d displacement vectors with components in {-1,0,1},
// including the zero vector. Offset k decodes k as a d-digit base-3 number,
// digit i giving the delta (digit-1) for axis i. The returned slice is shared
// and must not be modified. It returns nil for an unsupported d.
func Stencil(d int) []Point {
	if !ValidDims(d) {
		return nil
	}
	return load(d).all
}

// Ring is Stencil without the zero displacement: the 3^d - 1 offsets at
// Chebyshev distance exactly one. The returned slice is shared and must not be
// modified.
func Ring(d int) []Point {
	if !ValidDims(d) {
		return nil
	}
	return load(d).ring
}

func load(d int) *stencil {
	s := &stencils[d]
	s.once.Do(func() {
		total := pow3(d)
		zero := Point{n: uint8(d)}
		s.all = make([]Point, 0, total)
		s.ring = make([]Point, 0, total-1)
		for k := 0; k < total; k++ {
			off := Point{n: uint8(d)}
			rem := k
			for i := 0; i < d; i++ {
				off.x[i] = rem%3 - 1
				rem /= 3
			}
			s.all = append(s.all, off)
			if off != zero {
				s.ring = append(s.ring, off)
			}
		}
	})
	return s
}

// NeighborsWithSelf returns p and every point at Chebyshev distance one from
// it: 3^d points in total.
func NeighborsWithSelf(p Point) []Point {
	offs := Stencil(p.Dims())
	out := make([]Point, 0, len(offs))
	for _, off := range offs {
		out = append(out, p.Add(off))
	}
	return out
}

// Neighbors returns the Moore neighbourhood of p, excluding p itself: 3^d - 1
// points.
func Neighbors(p Point) []Point {
	offs := Stencil(p.Dims())
	if len(offs) == 0 {
		return nil
	}
	out := make([]Point, 0, len(offs)-1)
	for _, off := range offs {
		q := p.Add(off)
		if q == p {
			continue
		}
		out = append(out, q)
	}
	return out
}
