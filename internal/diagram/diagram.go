// Package diagram holds the state of one interactive line drawing diagram:
// its endpoints and parameters, the layers it is built from and the scene
// those layers produce.
//
// Layers are composed by calling the Add methods in paint order. Every layer
// registers an update function, and every change to the diagram's state runs
// all of them, so the scene always reflects the current endpoints.
package diagram

import (
	"errors"
	"fmt"
	"math"

	"mtoohey.com/linedraw/internal/geom"
	"mtoohey.com/linedraw/internal/util"
)

// ErrNoDiagram is returned when a diagram is looked up by an id that doesn't
// exist.
var ErrNoDiagram = errors.New("no such diagram")

// Grid describes the lattice a diagram is drawn on.
type Grid struct {
	// W and H are the number of cells.
	W, H int
	// Scale is the size of a cell in pixels.
	Scale float64
}

// DefaultGrid is the grid every diagram in the article uses.
var DefaultGrid = Grid{W: 25, H: 10, Scale: 22}

// Pixel returns the pixel position of the centre of cell p.
func (g Grid) Pixel(p geom.Point) (x, y float64) {
	return (p.X + 0.5) * g.Scale, (p.Y + 0.5) * g.Scale
}

// Cell returns the cell containing pixel position x, y. The result may lie
// outside the grid.
func (g Grid) Cell(x, y float64) geom.Point {
	return geom.Pt(math.Floor(x/g.Scale), math.Floor(y/g.Scale))
}

// Contains reports whether cell p lies on the grid.
func (g Grid) Contains(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(g.W) && p.Y < float64(g.H)
}

// Handle identifies one of the two endpoints.
type Handle int

const (
	HandleA Handle = iota
	HandleB
)

// String implements fmt.Stringer.
func (h Handle) String() string {
	switch h {
	case HandleA:
		return "A"
	case HandleB:
		return "B"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// Other returns the opposite endpoint.
func (h Handle) Other() Handle {
	return 1 - h
}

// Output is a named piece of text a diagram publishes, such as the lerp
// results or the optimal sample count.
type Output struct {
	Name string
	Text string
}

// Config contains the settings a diagram is created with.
type Config struct {
	// ID names the diagram within its variant.
	ID   string
	Grid Grid
	// A and B are the initial endpoints.
	A, B  geom.Point
	Style Style
	// Clamp keeps dragged endpoints on the grid. Without it, dragging past
	// the edge moves the endpoint off the grid.
	Clamp bool
	// RawScrub makes scrubbable numbers store unrounded values.
	RawScrub bool
}

// Diagram is the state of a single diagram. It is not safe for concurrent
// use; frontends own it from their event loop.
type Diagram struct {
	Config

	// A and B are the endpoints of the line.
	A, B geom.Point
	// T is the interpolation parameter, nil when the diagram doesn't show a
	// single interpolated point.
	T *float64
	// N is the number of interpolation steps, nil when unset.
	N *int

	scene       Scene
	updateFuncs []func()
	scrubbers   []*Scrubber
	outputs     []Output
	handles     bool
}

// New creates a diagram with no layers.
func New(c Config) *Diagram {
	if c.Grid == (Grid{}) {
		c.Grid = DefaultGrid
	}
	if c.Style == (Style{}) {
		c.Style = StyleWhite
	}

	return &Diagram{
		Config: c,
		A:      c.A,
		B:      c.B,
		scene: Scene{
			Width:  float64(c.Grid.W) * c.Grid.Scale,
			Height: float64(c.Grid.H) * c.Grid.Scale,
		},
	}
}

// OnUpdate registers f to run on every update, and runs an update straight
// away so f sees the current state.
func (d *Diagram) OnUpdate(f func()) {
	d.updateFuncs = append(d.updateFuncs, f)
	d.Update()
}

// Update runs every registered update function in registration order.
func (d *Diagram) Update() {
	for _, f := range d.updateFuncs {
		f()
	}
}

// Scene returns the scene as of the last update. It is rebuilt in place, so
// callers must not hold on to shapes across updates.
func (d *Diagram) Scene() *Scene {
	return &d.scene
}

// Scrubbers returns the scrubbable numbers bound by the diagram's layers.
func (d *Diagram) Scrubbers() []*Scrubber {
	return d.scrubbers
}

// Scrubber returns the scrubber bound to name.
func (d *Diagram) Scrubber(name string) (*Scrubber, bool) {
	for _, s := range d.scrubbers {
		if s.Name == name {
			return s, true
		}
	}

	return nil, false
}

// Outputs returns the text outputs published by the last update.
func (d *Diagram) Outputs() []Output {
	return d.outputs
}

// Output returns the text of the output called name.
func (d *Diagram) Output(name string) (string, bool) {
	for _, o := range d.outputs {
		if o.Name == name {
			return o.Text, true
		}
	}

	return "", false
}

// HasHandles reports whether the endpoints can be dragged.
func (d *Diagram) HasHandles() bool {
	return d.handles
}

// Endpoint returns a pointer to the endpoint h.
func (d *Diagram) Endpoint(h Handle) *geom.Point {
	if h == HandleB {
		return &d.B
	}

	return &d.A
}

// HandleAt returns the handle under pixel position x, y. When the handles
// overlap B wins, because it is painted last.
func (d *Diagram) HandleAt(x, y float64) (Handle, bool) {
	if !d.handles {
		return 0, false
	}

	for _, h := range [...]Handle{HandleB, HandleA} {
		cx, cy := d.Grid.Pixel(*d.Endpoint(h))
		if math.Hypot(x-cx, y-cy) <= d.Style.handleHitRadius(d.Grid) {
			return h, true
		}
	}

	return 0, false
}

// Drag moves endpoint h to the cell under pixel position x, y and updates
// the diagram. Whether the cell is clamped to the grid depends on the
// diagram's Clamp setting.
func (d *Diagram) Drag(h Handle, x, y float64) {
	p := d.Grid.Cell(x, y)
	if d.Clamp {
		p.X = util.Clamp(0, p.X, float64(d.Grid.W-1))
		p.Y = util.Clamp(0, p.Y, float64(d.Grid.H-1))
	}

	*d.Endpoint(h) = p
	d.Update()
}

// MoveBy drags endpoint h by dx, dy cells.
func (d *Diagram) MoveBy(h Handle, dx, dy int) {
	x, y := d.Grid.Pixel(*d.Endpoint(h))
	d.Drag(h, x+float64(dx)*d.Grid.Scale, y+float64(dy)*d.Grid.Scale)
}

// SetOutput publishes text under name, replacing any previous text.
func (d *Diagram) SetOutput(name, text string) {
	for i := range d.outputs {
		if d.outputs[i].Name == name {
			d.outputs[i].Text = text
			return
		}
	}

	d.outputs = append(d.outputs, Output{Name: name, Text: text})
}

// bindScrubber makes the parameter behind get and set scrubbable. Parameters
// that are unset are not bound, since there is no number to show.
func (d *Diagram) bindScrubber(name string, low, high float64, precision int, get func() (float64, bool), set func(float64)) {
	if _, ok := get(); !ok {
		return
	}
	if _, ok := d.Scrubber(name); ok {
		return
	}

	d.scrubbers = append(d.scrubbers, &Scrubber{
		Name:      name,
		Low:       low,
		High:      high,
		Precision: precision,
		Raw:       d.RawScrub,
		get: func() float64 {
			v, _ := get()
			return v
		},
		set: func(v float64) {
			set(v)
			d.Update()
		},
	})
}

func (d *Diagram) bindT() {
	d.bindScrubber("t", 0, 1, 2, func() (float64, bool) {
		if d.T == nil {
			return 0, false
		}
		return *d.T, true
	}, func(v float64) {
		d.T = &v
	})
}

func (d *Diagram) bindN() {
	d.bindScrubber("N", 1, 30, 0, func() (float64, bool) {
		if d.N == nil {
			return 0, false
		}
		return float64(*d.N), true
	}, func(v float64) {
		n := int(math.Round(v))
		d.N = &n
	})
}

func (d *Diagram) addGroup(class string) *Group {
	g := &Group{Class: class}
	d.scene.Groups = append(d.scene.Groups, g)
	return g
}

// Find returns the diagram in ds whose ID is id. An empty id selects the
// first diagram.
func Find(ds []*Diagram, id string) (*Diagram, error) {
	if id == "" && len(ds) > 0 {
		return ds[0], nil
	}

	for _, d := range ds {
		if d.ID == id {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNoDiagram, id)
}
