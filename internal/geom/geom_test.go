package geom

import (
	"fmt"
	"image"
	"math"
	"testing"

	"mtoohey.com/linedraw/internal/testutil/assert"
	"mtoohey.com/linedraw/internal/util"
)

func TestLerp(t *testing.T) {
	t.Run("ends", func(t *testing.T) {
		for _, c := range [][2]float64{{0, 1}, {0, 100}, {3, 5}, {5, 3}, {-7, 12}} {
			assert.Equal(t, c[0], Lerp(c[0], c[1], 0))
			assert.Equal(t, c[1], Lerp(c[0], c[1], 1))
		}
	})

	t.Run("fractional ends", func(t *testing.T) {
		assert.InDelta(t, 0.1, Lerp(0.1, 0.3, 0), 1e-12)
		assert.InDelta(t, 0.3, Lerp(0.1, 0.3, 1), 1e-12)
	})

	t.Run("middle", func(t *testing.T) {
		assert.Equal(t, 4.0, Lerp(3, 5, 0.5))
		assert.Equal(t, 4.0, Lerp(5, 3, 0.5))
	})

	t.Run("unclamped", func(t *testing.T) {
		assert.Equal(t, 12.0, Lerp(0, 10, 1.2))
		assert.Equal(t, -5.0, Lerp(0, 10, -0.5))
	})
}

func TestLerpPoint(t *testing.T) {
	p, q := Pt(2, 2), Pt(20, 8)
	assert.Equal(t, p, LerpPoint(p, q, 0))
	assert.Equal(t, q, LerpPoint(p, q, 1))
	assert.Equal(t, Pt(11, 5), LerpPoint(p, q, 0.5))
}

func TestInterpolationPoints(t *testing.T) {
	t.Run("five", func(t *testing.T) {
		points := InterpolationPoints(Pt(0, 0), Pt(10, 5), 5)
		assert.Len(t, 6, points)
		assert.Equal(t, Pt(0, 0), points[0])
		assert.Equal(t, Pt(4, 2), points[2])
		assert.Equal(t, Pt(10, 5), points[5])
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, []Point{Pt(3, 4)}, InterpolationPoints(Pt(3, 4), Pt(9, 9), 0))
	})

	t.Run("negative", func(t *testing.T) {
		assert.Equal(t, []Point{}, InterpolationPoints(Pt(3, 4), Pt(9, 9), -1))
	})
}

func TestRoundPoint(t *testing.T) {
	assert.Equal(t, Pt(3, 5), RoundPoint(Pt(2.5, 4.6)))
	assert.Equal(t, Pt(-3, -4), RoundPoint(Pt(-2.5, -4.4)))
}

func TestLineDistance(t *testing.T) {
	assert.Equal(t, 18.0, LineDistance(Pt(2, 2), Pt(20, 8)))
	assert.Equal(t, 7.0, LineDistance(Pt(4, 1), Pt(3, 8)))
	assert.Zero(t, LineDistance(Pt(4, 1), Pt(4, 1)))

	for ax := -3; ax <= 3; ax++ {
		for ay := -3; ay <= 3; ay++ {
			a, b := Pt(float64(ax), float64(ay)), Pt(float64(ay*2), float64(-ax))
			assert.Equal(t, LineDistance(a, b), LineDistance(b, a))
		}
	}
}

func TestPointsOnLine(t *testing.T) {
	t.Run("article example", func(t *testing.T) {
		points := PointsOnLine(Pt(2, 2), Pt(20, 8))
		assert.Len(t, 19, points)
		assert.Equal(t, Pt(2, 2), points[0])
		assert.Equal(t, Pt(11, 5), points[9])
		assert.Equal(t, Pt(20, 8), points[18])
	})

	t.Run("single point", func(t *testing.T) {
		assert.Equal(t, []Point{Pt(7, 3)}, PointsOnLine(Pt(7, 3), Pt(7, 3)))
	})

	t.Run("horizontal", func(t *testing.T) {
		assert.Equal(t, []Point{Pt(3, 1), Pt(2, 1), Pt(1, 1)}, PointsOnLine(Pt(3, 1), Pt(1, 1)))
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1)}, PointsOnLine(Pt(0, 0), Pt(2, 1)))
	})

	t.Run("connected walk", func(t *testing.T) {
		const w, h = 25, 10
		for ax := 0; ax < w; ax += 3 {
			for ay := 0; ay < h; ay++ {
				for bx := 0; bx < w; bx += 2 {
					for by := 0; by < h; by += 3 {
						a := Pt(float64(ax), float64(ay))
						b := Pt(float64(bx), float64(by))
						t.Run(fmt.Sprintf("%v to %v", a, b), func(t *testing.T) {
							checkWalk(t, a, b, PointsOnLine(a, b))
						})
					}
				}
			}
		}
	})
}

func TestIsCell(t *testing.T) {
	assert.True(t, Pt(2, 8).IsCell())
	assert.True(t, Pt(-3, 0).IsCell())
	assert.False(t, Pt(0.4, 0).IsCell())
	assert.False(t, Pt(1, 1.8).IsCell())
	assert.False(t, Pt(math.Inf(1), 0).IsCell())
	assert.False(t, Pt(0, math.NaN()).IsCell())
}

func TestPointsOnLineRoundedEndpoints(t *testing.T) {
	for _, ends := range [][2]Point{
		{Pt(0.4, 0), Pt(1.8, 0)},
		{Pt(0.5, 0), Pt(2.4, 0)},
		{Pt(3.7, 1.2), Pt(-2.5, 6.6)},
	} {
		a, b := ends[0].Round(), ends[1].Round()
		t.Run(fmt.Sprintf("%v to %v", ends[0], ends[1]), func(t *testing.T) {
			checkWalk(t, a, b, PointsOnLine(a, b))
		})
	}
}

func checkWalk(t *testing.T, a, b Point, points []Point) {
	t.Helper()

	n := util.Max(util.Abs(int(a.X-b.X)), util.Abs(int(a.Y-b.Y)))
	if !assert.Len(t, n+1, points) {
		return
	}
	assert.Equal(t, a, points[0])
	assert.Equal(t, b, points[len(points)-1])

	seen := map[image.Point]struct{}{}
	for i, p := range points {
		if _, ok := seen[p.Image()]; ok {
			t.Errorf("cell %v repeated at index %d", p, i)
		}
		seen[p.Image()] = struct{}{}

		if i == 0 {
			continue
		}
		prev := points[i-1]
		if util.Abs(p.X-prev.X) > 1 || util.Abs(p.Y-prev.Y) > 1 {
			t.Errorf("gap between %v and %v at index %d", prev, p, i)
		}
	}
}
