package diagram

import (
	"math"
	"strconv"

	"mtoohey.com/linedraw/internal/geom"
	"mtoohey.com/linedraw/internal/util"
)

// AddGrid adds a layer with every cell of the grid.
func (d *Diagram) AddGrid() *Diagram {
	g := d.addGroup("grid")
	s := d.Grid.Scale
	for x := 0; x < d.Grid.W; x++ {
		for y := 0; y < d.Grid.H; y++ {
			g.Shapes = append(g.Shapes, Shape{
				Kind:        KindRect,
				X:           float64(x) * s,
				Y:           float64(y) * s,
				W:           s,
				H:           s,
				Fill:        d.Style.pick(d.Style.GridFill),
				Stroke:      d.Style.pick(d.Style.GridStroke),
				StrokeWidth: 1,
				Cell:        geom.Pt(float64(x), float64(y)),
			})
		}
	}

	return d
}

// AddTrack adds a layer with a straight line between the endpoint centres.
func (d *Diagram) AddTrack() *Diagram {
	g := d.addGroup("track")
	d.OnUpdate(func() {
		x1, y1 := d.Grid.Pixel(d.A)
		x2, y2 := d.Grid.Pixel(d.B)
		g.Shapes = []Shape{{
			Kind:        KindLine,
			X:           x1,
			Y:           y1,
			X2:          x2,
			Y2:          y2,
			Stroke:      d.Style.pick(d.Style.TrackStroke),
			StrokeWidth: d.Style.TrackWidth,
			Cell:        d.A,
		}}
	})

	return d
}

// AddLine adds a layer with the cells of the rasterized line from A to B.
func (d *Diagram) AddLine() *Diagram {
	g := d.addGroup("line")
	d.OnUpdate(func() {
		g.Shapes = g.Shapes[:0]
		for _, p := range geom.PointsOnLine(d.A, d.B) {
			g.Shapes = append(g.Shapes, d.cellRect(p, d.Grid.Scale-1, d.Style.LineFill))
		}
	})

	return d
}

// AddLerpValues binds a scrubbable t starting at 0.3 and publishes the
// outputs lerp1 to lerp4, which interpolate between fixed pairs of numbers.
// It adds no shapes.
func (d *Diagram) AddLerpValues() *Diagram {
	t := 0.3
	d.T = &t
	d.bindT()
	d.OnUpdate(func() {
		if d.T == nil {
			return
		}
		t := *d.T
		d.SetOutput("lerp1", Format(geom.Lerp(0, 1, t), 2))
		d.SetOutput("lerp2", Format(geom.Lerp(0, 100, t), 0))
		d.SetOutput("lerp3", Format(geom.Lerp(3, 5, t), 1))
		d.SetOutput("lerp4", Format(geom.Lerp(5, 3, t), 1))
	})

	return d
}

// AddInterpolated adds a layer of interpolated points. If t is non-nil, the
// single point at t is drawn; otherwise if n is non-nil the n+1 evenly
// spaced points are drawn. A radius of 0 uses the style's point radius.
func (d *Diagram) AddInterpolated(t *float64, n *int, radius float64) *Diagram {
	d.T, d.N = t, n
	d.bindT()
	d.bindN()

	if radius == 0 {
		radius = d.Style.PointRadius
	}

	g := d.addGroup("interpolated")
	d.OnUpdate(func() {
		g.Shapes = g.Shapes[:0]
		for _, p := range d.interpolated() {
			x, y := d.Grid.Pixel(p)
			g.Shapes = append(g.Shapes, Shape{
				Kind: KindCircle,
				X:    x,
				Y:    y,
				R:    radius,
				Fill: d.Style.pick(d.Style.PointFill),
				Cell: p.Round(),
			})
		}
	})

	return d
}

func (d *Diagram) interpolated() []geom.Point {
	switch {
	case d.T != nil:
		return []geom.Point{geom.LerpPoint(d.A, d.B, *d.T)}
	case d.N != nil:
		return geom.InterpolationPoints(d.A, d.B, *d.N)
	default:
		return nil
	}
}

// AddInterpolationLabels adds a layer numbering the interpolation points.
// Labels sit beside steep lines and above shallow ones. It shows nothing
// unless N is set.
func (d *Diagram) AddInterpolationLabels() *Diagram {
	g := d.addGroup("interpolation-labels")
	d.OnUpdate(func() {
		g.Shapes = g.Shapes[:0]
		if d.N == nil {
			return
		}

		s := d.Grid.Scale
		offset, cellOffset := geom.Pt(0, -0.8*s), geom.Pt(0, -1)
		if util.Abs(d.B.Y-d.A.Y) > util.Abs(d.B.X-d.A.X) {
			offset, cellOffset = geom.Pt(0.8*s, 0), geom.Pt(1, 0)
		}

		for i, p := range geom.InterpolationPoints(d.A, d.B, *d.N) {
			g.Shapes = append(g.Shapes, Shape{
				Kind:   KindText,
				X:      p.X*s + offset.X + 0.5*s,
				Y:      p.Y*s + offset.Y + 0.75*s,
				Text:   strconv.Itoa(i),
				Anchor: "middle",
				Cell:   p.Round().Add(cellOffset),
			})
		}
	})

	return d
}

// AddRoundedPoints adds a layer with the interpolation points rounded to
// cells. When N is unset the line distance is used, which gives the
// rasterized line.
func (d *Diagram) AddRoundedPoints() *Diagram {
	g := d.addGroup("rounded")
	d.OnUpdate(func() {
		n := int(math.Round(geom.LineDistance(d.A, d.B)))
		if d.N != nil {
			n = *d.N
		}

		g.Shapes = g.Shapes[:0]
		for _, p := range geom.InterpolationPoints(d.A, d.B, n) {
			g.Shapes = append(g.Shapes, d.cellRect(p.Round(), d.Grid.Scale, d.Style.RoundedFill))
		}
	})

	return d
}

// AddHandles adds a layer with a draggable handle on each endpoint.
func (d *Diagram) AddHandles() *Diagram {
	d.handles = true
	g := d.addGroup("handles")
	d.OnUpdate(func() {
		g.Shapes = g.Shapes[:0]
		for _, h := range [...]Handle{HandleA, HandleB} {
			p := *d.Endpoint(h)
			x, y := d.Grid.Pixel(p)
			handle := Shape{
				Kind: KindCircle,
				X:    x,
				Y:    y,
				Text: h.String(),
				Cell: p,
			}

			if d.Style.SmallHandles {
				invisible := handle
				invisible.Class = "invisible"
				invisible.R = smallHandleHitRadius
				handle.Class = "visible"
				handle.R = smallHandleRadius
				handle.Fill = d.Style.pick(d.Style.HandleFill)
				g.Shapes = append(g.Shapes, invisible, handle)
				continue
			}

			handle.Class = "draggable"
			handle.R = d.Style.handleRadius(d.Grid)
			handle.Fill = d.Style.pick(d.Style.HandleFill)
			g.Shapes = append(g.Shapes, handle)
		}
	})

	return d
}

// AddOptimalN publishes the output optimal-N, the sample count that
// rasterizes the line without gaps.
func (d *Diagram) AddOptimalN() *Diagram {
	d.OnUpdate(func() {
		d.SetOutput("optimal-N", Format(geom.LineDistance(d.A, d.B), 0))
	})

	return d
}

func (d *Diagram) cellRect(p geom.Point, size float64, fill string) Shape {
	return Shape{
		Kind: KindRect,
		X:    p.X * d.Grid.Scale,
		Y:    p.Y * d.Grid.Scale,
		W:    size,
		H:    size,
		Fill: d.Style.pick(fill),
		Cell: p,
	}
}
