package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxDims is the largest dimensionality a Point can carry.
const MaxDims = 10

// ErrDims reports a dimensionality outside [1, MaxDims].
var ErrDims = errors.New("lattice: dimensionality out of range")

// Point is an immutable coordinate on the integer lattice. The number of axes
// is stored alongside the values so points of different dimensionality never
// compare equal. Point is comparable and can be used as a map key.
type Point struct {
	n uint8
	x [MaxDims]int
}

// ValidDims reports whether d is a supported dimensionality.
func ValidDims(d int) bool { return d >= 1 && d <= MaxDims }

// NewPoint builds a point from explicit axis values.
func NewPoint(axes ...int) (Point, error) {
	if !ValidDims(len(axes)) {
		return Point{}, fmt.Errorf("%w: %d axes", ErrDims, len(axes))
	}
	var p Point
	p.n = uint8(len(axes))
	copy(p.x[:], axes)
	return p, nil
}

// MustPoint is like NewPoint but panics on an invalid axis count. It is meant
// for literals in tests and pattern tables.
func MustPoint(axes ...int) Point {
	p, err := NewPoint(axes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Origin returns the all-zero point with d axes.
func Origin(d int) (Point, error) {
	if !ValidDims(d) {
		return Point{}, fmt.Errorf("%w: %d", ErrDims, d)
	}
	return Point{n: uint8(d)}, nil
}

// Pair returns a d-dimensional point whose first two axes are a0 and a1 and
// whose remaining axes are zero. For d == 1 only a0 is kept.
func Pair(d, a0, a1 int) (Point, error) {
	p, err := Origin(d)
	if err != nil {
		return Point{}, err
	}
	p.x[0] = a0
	if d > 1 {
		p.x[1] = a1
	}
	return p, nil
}

// Dims returns the number of axes.
func (p Point) Dims() int { return int(p.n) }

// Axis returns the value along axis i, or 0 when i is out of range.
func (p Point) Axis(i int) int {
	if i < 0 || i >= int(p.n) {
		return 0
	}
	return p.x[i]
}

// Axes returns a copy of the axis values.
func (p Point) Axes() []int {
	out := make([]int, p.n)
	copy(out, p.x[:p.n])
	return out
}

// Offset returns a new point whose i-th axis is p[i] + deltas[i]. Missing
// deltas are treated as zero and extra deltas are ignored.
func (p Point) Offset(deltas []int) Point {
	out := p
	n := min(int(p.n), len(deltas))
	for i := 0; i < n; i++ {
		out.x[i] += deltas[i]
	}
	return out
}

// Add returns the axis-wise sum of p and q, keeping p's dimensionality.
func (p Point) Add(q Point) Point {
	out := p
	for i := 0; i < int(p.n); i++ {
		out.x[i] += q.x[i]
	}
	return out
}

// Shift moves the point by delta along a single axis. ok is false, and p is
// returned unchanged, when axis does not exist on this point.
func (p Point) Shift(axis, delta int) (moved Point, ok bool) {
	if axis < 0 || axis >= int(p.n) {
		return p, false
	}
	p.x[axis] += delta
	return p, true
}

// Less orders points lexicographically by axis, shorter points first.
func (p Point) Less(q Point) bool {
	if p.n != q.n {
		return p.n < q.n
	}
	for i := 0; i < int(p.n); i++ {
		if p.x[i] != q.x[i] {
			return p.x[i] < q.x[i]
		}
	}
	return false
}

func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < int(p.n); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p.x[i]))
	}
	b.WriteByte(')')
	return b.String()
}
