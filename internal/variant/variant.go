// Package variant registers the stages the line drawing article builds its
// diagrams up through, from a bare grid to the final draggable line with
// rounded interpolation points.
package variant

import (
	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/geom"
)

// Options are the settings shared by every diagram a variant builds.
type Options struct {
	Grid diagram.Grid
	// A and B are the initial endpoints.
	A, B geom.Point
}

// DefaultOptions returns the grid and endpoints the article starts with.
func DefaultOptions() Options {
	return Options{
		Grid: diagram.DefaultGrid,
		A:    geom.Pt(2, 2),
		B:    geom.Pt(20, 8),
	}
}

// Variant is one stage of the article.
type Variant struct {
	Name  string
	Title string

	build func(o Options) []*diagram.Diagram
}

// Build creates fresh diagrams for the variant.
func (v Variant) Build(o Options) []*diagram.Diagram {
	return v.build(o)
}

// Default is the name of the variant used when none is given.
const Default = "12"

func config(o Options, id string, style diagram.Style) diagram.Config {
	return diagram.Config{ID: id, Grid: o.Grid, A: o.A, B: o.B, Style: style}
}

func ptr[T any](v T) *T {
	return &v
}

var variants = []Variant{
	{
		Name:  "2-grid",
		Title: "an empty grid",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{
				diagram.New(config(o, "demo", diagram.StyleWhite)).AddGrid(),
			}
		},
	},
	{
		Name:  "2-line",
		Title: "a fixed line on the grid",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{
				diagram.New(config(o, "demo", diagram.StyleWhite)).AddGrid().AddLine(),
			}
		},
	},
	{
		Name:  "3-redraw",
		Title: "draggable endpoints redraw the line",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{
				diagram.New(config(o, "demo", diagram.StyleOutline)).AddGrid().AddLine().AddHandles(),
			}
		},
	},
	{
		Name:  "4",
		Title: "diagram built from layers",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{demo(o)}
		},
	},
	{
		Name:  "5",
		Title: "scrubbable linear interpolation of numbers",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{lerpValues(o)}
		},
	},
	{
		Name:  "6",
		Title: "a point interpolated along the line by t",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{interpolateT(o, "interpolate-t", diagram.StyleWhite, 0.3)}
		},
	},
	{
		Name:  "6-N",
		Title: "N evenly spaced interpolated points",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{interpolateN(o, diagram.StyleOutline, false)}
		},
	},
	{
		Name:  "7",
		Title: "layers with a tinted grid",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{interpolateT(o, "layers", diagram.StyleTinted, 0.5)}
		},
	},
	{
		Name:  "8",
		Title: "numbered interpolation points",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{interpolateN(o, diagram.StyleTinted, true)}
		},
	},
	{
		Name:  "9",
		Title: "all the diagrams so far",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{
				demo(o),
				lerpValues(o),
				interpolateT(o, "interpolate-t", diagram.StyleWhite, 0.5),
			}
		},
	},
	{
		Name:  "11",
		Title: "rounding interpolated points to cells",
		build: func(o Options) []*diagram.Diagram {
			return []*diagram.Diagram{pointRounding(o, diagram.StyleWhite, false)}
		},
	},
	{
		Name:  "12",
		Title: "labelled rounding with small handles",
		build: func(o Options) []*diagram.Diagram {
			c := config(o, "point-rounding", diagram.StyleClassed)
			c.Clamp = true
			return []*diagram.Diagram{pointRoundingFrom(c, true)}
		},
	},
}

func demo(o Options) *diagram.Diagram {
	return diagram.New(config(o, "demo", diagram.StyleWhite)).AddGrid().AddLine().AddHandles()
}

func lerpValues(o Options) *diagram.Diagram {
	c := config(o, "linear-interpolation", diagram.StyleWhite)
	c.RawScrub = true
	return diagram.New(c).AddLerpValues()
}

func interpolateT(o Options, id string, style diagram.Style, t float64) *diagram.Diagram {
	c := config(o, id, style)
	c.RawScrub = true
	return diagram.New(c).
		AddGrid().
		AddTrack().
		AddInterpolated(ptr(t), nil, 0).
		AddHandles()
}

func interpolateN(o Options, style diagram.Style, labels bool) *diagram.Diagram {
	d := diagram.New(config(o, "interpolate-N", style)).
		AddGrid().
		AddTrack().
		AddInterpolated(nil, ptr(5), 0).
		AddHandles()
	if labels {
		d.AddInterpolationLabels()
	}

	return d
}

func pointRounding(o Options, style diagram.Style, labels bool) *diagram.Diagram {
	return pointRoundingFrom(config(o, "point-rounding", style), labels)
}

func pointRoundingFrom(c diagram.Config, labels bool) *diagram.Diagram {
	d := diagram.New(c).
		AddGrid().
		AddTrack().
		AddRoundedPoints().
		AddInterpolated(nil, ptr(5), 2.5).
		AddHandles()
	if labels {
		d.AddInterpolationLabels()
	}

	return d.AddOptimalN()
}
