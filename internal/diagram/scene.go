package diagram

import (
	"errors"

	"mtoohey.com/linedraw/internal/geom"
)

// ErrEmptyScene is returned by renderers given a scene with no layers.
var ErrEmptyScene = errors.New("scene has nothing to draw")

// Kind identifies the type of a Shape.
type Kind uint8

const (
	KindRect Kind = iota
	KindCircle
	KindLine
	KindText
)

// Shape is a single drawable element of a layer, positioned in pixels.
//
// Which fields are meaningful depends on Kind:
//
//   - KindRect: X, Y is the top left corner, W, H the size.
//   - KindCircle: X, Y is the centre, R the radius.
//   - KindLine: X, Y is the start, X2, Y2 the end.
//   - KindText: X, Y is the baseline anchor, Text the content and Anchor one
//     of "start", "middle" or "end".
//
// Fill and Stroke are CSS colours. When both are empty the shape is styled by
// its class through Stylesheet.
type Shape struct {
	Kind  Kind
	Class string

	X, Y   float64
	W, H   float64
	X2, Y2 float64
	R      float64

	Text   string
	Anchor string

	Fill        string
	Stroke      string
	StrokeWidth float64

	// Cell is the lattice cell the shape stands for, so that frontends which
	// can't draw at pixel precision know where to put it.
	Cell geom.Point
}

// Group is a layer of the scene. Each layer owns exactly one group and
// replaces its shapes every time the diagram updates.
type Group struct {
	Class  string
	Shapes []Shape
}

// Scene is everything a diagram draws, in paint order.
type Scene struct {
	Width, Height float64
	Groups        []*Group
}

// Empty reports whether the scene has no layers at all, as is the case for
// diagrams that only drive text outputs.
func (s *Scene) Empty() bool {
	return len(s.Groups) == 0
}

// Paint is the resolved style of a shape.
type Paint struct {
	Fill, Stroke string
	Width        float64
}

// Stylesheet holds the styles of class-only shapes. Keys are either
// "group shape" or just "group".
var Stylesheet = map[string]Paint{
	"grid":                 {Fill: "white", Stroke: "hsl(0,0%,75%)", Width: 1},
	"track":                {Stroke: "hsl(0,0%,60%)", Width: 3},
	"line":                 {Fill: "hsl(0,40%,70%)"},
	"rounded":              {Fill: "hsl(0,40%,75%)"},
	"interpolated":         {Fill: "hsl(0,30%,50%)"},
	"interpolation-labels": {Fill: "hsl(0,0%,30%)"},
	"handles visible":      {Fill: "hsl(0,50%,50%)"},
	"handles invisible":    {Fill: "none"},
}

// Resolve returns the paint for s as a member of group.
func (s Shape) Resolve(group string) Paint {
	if s.Fill != "" || s.Stroke != "" {
		return Paint{Fill: s.Fill, Stroke: s.Stroke, Width: s.StrokeWidth}
	}

	if p, ok := Stylesheet[group+" "+s.Class]; ok {
		return p
	}

	return Stylesheet[group]
}
