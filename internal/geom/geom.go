// Package geom implements the sampling behind every diagram: linear
// interpolation between two points, and rounding the samples onto the
// integer lattice to draw a line.
package geom

import (
	"fmt"
	"image"
	"math"

	"mtoohey.com/linedraw/internal/util"
)

// Point is a position on the grid. Whole values name a cell; fractional
// values are positions between cell centres.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsCell reports whether both coordinates of p are whole, finite numbers.
func (p Point) IsCell() bool {
	whole := func(v float64) bool {
		return !math.IsInf(v, 0) && v == math.Trunc(v)
	}
	return whole(p.X) && whole(p.Y)
}

// Image truncates p to a cell index. Callers that want the nearest cell
// should use Round first.
func (p Point) Image() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Round returns p with each coordinate rounded half away from zero.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// String implements fmt.Stringer using the same x,y form accepted on the
// command line.
func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

var _ fmt.Stringer = Point{}

// Lerp returns start + t*(end-start). t is not clamped, so values outside
// [0, 1] extrapolate past the ends.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

// LerpPoint interpolates each coordinate of p and q independently.
func LerpPoint(p, q Point, t float64) Point {
	return Point{
		X: Lerp(p.X, q.X, t),
		Y: Lerp(p.Y, q.Y, t),
	}
}

// InterpolationPoints returns the n+1 points at t = i/n for i in [0, n]. When
// n is 0 the single point p is returned, since t is defined as 0. A negative
// n returns no points.
func InterpolationPoints(p, q Point, n int) []Point {
	if n < 0 {
		return []Point{}
	}

	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 0.0
		if n != 0 {
			t = float64(i) / float64(n)
		}
		points = append(points, LerpPoint(p, q, t))
	}

	return points
}

// RoundPoint is the function form of Point.Round, convenient for mapping
// over a sample sequence.
func RoundPoint(p Point) Point {
	return p.Round()
}

// LineDistance returns the Chebyshev distance between a and b: the larger
// of the absolute coordinate differences. It is the smallest sample count
// for which the rounded samples of a line leave no gaps.
func LineDistance(a, b Point) float64 {
	return util.Max(util.Abs(a.X-b.X), util.Abs(a.Y-b.Y))
}

// PointsOnLine returns the lattice cells of the line from p to q.
//
// The line is sampled LineDistance(p, q) times and every sample is rounded.
// When both endpoints are cells the walk starts at p, ends at q, never
// repeats a cell and consecutive cells differ by at most one in each
// coordinate. Fractional endpoints give no such guarantee: the samples can
// skip or repeat cells, so callers round endpoints to cells first.
func PointsOnLine(p, q Point) []Point {
	n := int(math.Round(LineDistance(p, q)))
	points := InterpolationPoints(p, q, n)
	for i, point := range points {
		points[i] = point.Round()
	}

	return points
}
