// Package window shows diagrams in a desktop window, drawn at pixel scale.
package window

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/paint"
)

const (
	// barH is the height of the title and status bars. The debug font is
	// 6x16 pixels.
	barH  = 16
	charW = 6
)

var (
	colorBackground = paint.MustParse("white")
	colorBar        = paint.MustParse("#303030")
	colorFallback   = paint.MustParse("gray")
)

type scrubHit struct {
	r image.Rectangle
	s *diagram.Scrubber
}

// Game holds the state of the window frontend. Its input methods are
// independent of ebiten so they can be driven directly.
type Game struct {
	title    string
	logger   *log.Logger
	diagrams []*diagram.Diagram
	current  int

	selected    diagram.Handle
	pressed     bool
	dragging    bool
	scrubbing   *diagram.Scrubber
	scrubStartX int

	colors map[string]color.Color
}

// NewGame creates a game showing ds.
func NewGame(title string, ds []*diagram.Diagram, logger *log.Logger) (*Game, error) {
	if len(ds) == 0 {
		return nil, diagram.ErrNoDiagram
	}

	return &Game{
		title:    title,
		logger:   logger,
		diagrams: ds,
		selected: diagram.HandleB,
		colors:   map[string]color.Color{},
	}, nil
}

func (g *Game) diagram() *diagram.Diagram {
	return g.diagrams[g.current]
}

// Size returns the size of the window contents in pixels.
func (g *Game) Size() (w, h int) {
	s := g.diagrams[0].Scene()
	return int(math.Ceil(s.Width)), int(math.Ceil(s.Height)) + 2*barH
}

// sceneOrigin is the offset of the scene within the window.
var sceneOrigin = image.Pt(0, barH)

// Focus shows the diagram at index i, wrapping around.
func (g *Game) Focus(i int) {
	n := len(g.diagrams)
	g.current = ((i % n) + n) % n
	g.pressed, g.dragging, g.scrubbing = false, false, nil
}

// Select makes h the endpoint moved by the keyboard.
func (g *Game) Select(h diagram.Handle) {
	g.selected = h
}

// Toggle selects the endpoint that isn't selected.
func (g *Game) Toggle() {
	g.selected = g.selected.Other()
}

// Move moves the selected endpoint by dx, dy cells.
func (g *Game) Move(dx, dy int) {
	d := g.diagram()
	if !d.HasHandles() {
		return
	}

	d.MoveBy(g.selected, dx, dy)
}

// Press starts a drag at window position x, y, either of a handle or of a
// scrubbable number in the status bar.
func (g *Game) Press(x, y int) {
	if g.pressed {
		return
	}
	g.pressed = true

	p := image.Pt(x, y)
	for _, h := range g.scrubHits() {
		if p.In(h.r) {
			h.s.Begin()
			g.scrubbing = h.s
			g.scrubStartX = x
			return
		}
	}

	sx, sy := g.scenePos(x, y)
	if h, ok := g.diagram().HandleAt(sx, sy); ok {
		g.selected = h
		g.dragging = true
	}
}

// Motion continues the current drag, if any.
func (g *Game) Motion(x, y int) {
	switch {
	case g.scrubbing != nil:
		g.scrubbing.Move(float64(x - g.scrubStartX))
	case g.dragging:
		g.diagram().Drag(g.selected, g.scenePos(x, y))
	}
}

// Release ends the current drag.
func (g *Game) Release() {
	g.pressed, g.dragging, g.scrubbing = false, false, nil
}

func (g *Game) scenePos(x, y int) (float64, float64) {
	return float64(x - sceneOrigin.X), float64(y - sceneOrigin.Y)
}

// statusY is the top of the status bar.
func (g *Game) statusY() int {
	_, h := g.Size()
	return h - barH
}

type statusItem struct {
	x    int
	text string
	s    *diagram.Scrubber
}

// statusItems lays out the status bar text.
func (g *Game) statusItems() []statusItem {
	d := g.diagram()
	var items []statusItem
	x := 4
	add := func(name, value string, s *diagram.Scrubber) {
		text := name + "=" + value
		items = append(items, statusItem{x: x, text: text, s: s})
		x += (len(text) + 2) * charW
	}

	if d.HasHandles() {
		add("selected", g.selected.String(), nil)
		add("A", d.A.String(), nil)
		add("B", d.B.String(), nil)
	}
	for _, s := range d.Scrubbers() {
		add(s.Name, s.Text(), s)
	}
	for _, o := range d.Outputs() {
		add(o.Name, o.Text, nil)
	}

	return items
}

func (g *Game) scrubHits() []scrubHit {
	var hits []scrubHit
	y := g.statusY()
	for _, item := range g.statusItems() {
		if item.s == nil {
			continue
		}
		hits = append(hits, scrubHit{
			r: image.Rect(item.x, y, item.x+len(item.text)*charW, y+barH),
			s: item.s,
		})
	}
	return hits
}

func (g *Game) titleText() string {
	return fmt.Sprintf("%s  %s (%d/%d)", g.title, g.diagram().ID, g.current+1, len(g.diagrams))
}

// color parses css, caching the result. Unparseable colours are logged once
// and drawn grey.
func (g *Game) color(css string) color.Color {
	if c, ok := g.colors[css]; ok {
		return c
	}

	c, err := paint.Parse(css)
	if err != nil {
		g.logger.Printf("failed to parse colour: %v", err)
		c = colorFallback
	}
	g.colors[css] = c
	return c
}
