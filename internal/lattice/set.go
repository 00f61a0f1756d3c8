package lattice

import "slices"

// Set is an unordered collection of distinct points.
type Set map[Point]struct{}

// NewSet returns a set holding the given points. Duplicates collapse.
func NewSet(points ...Point) Set {
	s := make(Set, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p.
func (s Set) Add(p Point) { s[p] = struct{}{} }

// Has reports whether p is a member.
func (s Set) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Points returns the members in lexicographic order.
func (s Set) Points() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Equal reports whether s and o contain exactly the same points.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if _, ok := o[p]; !ok {
			return false
		}
	}
	return true
}
