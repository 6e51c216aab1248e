package tui

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"mtoohey.com/linedraw/internal/cmd"
	"mtoohey.com/linedraw/internal/diagram"
)

var errNoHandles = errors.New("this diagram has no draggable endpoints")

type scrub struct {
	s      *diagram.Scrubber
	startX int
}

type tui struct {
	// constants
	Cmd
	cmd.Globals
	logger *log.Logger
	title  string

	// resources
	screen tcell.Screen

	// data state
	diagrams []*diagram.Diagram
	current  int

	// ui state
	titleR   image.Rectangle
	diagramR image.Rectangle
	statusR  image.Rectangle
	helpR    image.Rectangle
	errorR   image.Rectangle

	selected  diagram.Handle
	pressed   bool
	dragging  bool
	scrubbing *scrub
	scrubHits []scrubHit

	visibleErr       error
	errTimeoutCancel chan struct{}
	clearErrCh       chan struct{}
	wg               sync.WaitGroup
}

// newTUI creates a new tui showing ds on screen, which must not have been
// initialized yet. The screen is finalized when the loop exits.
func newTUI(c Cmd, g cmd.Globals, logger *log.Logger, screen tcell.Screen, title string, ds []*diagram.Diagram) (*tui, error) {
	if len(ds) == 0 {
		return nil, diagram.ErrNoDiagram
	}

	t := &tui{
		Cmd:        c,
		Globals:    g,
		logger:     logger,
		title:      title,
		screen:     screen,
		diagrams:   ds,
		selected:   diagram.HandleB,
		clearErrCh: make(chan struct{}),
	}

	if err := t.screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	t.screen.EnableMouse()

	t.resize(t.screen.Size())

	return t, nil
}

func (t *tui) close() {
	if t.errTimeoutCancel != nil {
		close(t.errTimeoutCancel)
		t.errTimeoutCancel = nil
	}
	t.screen.Fini()
}

func (t *tui) diagram() *diagram.Diagram {
	return t.diagrams[t.current]
}

func (t *tui) resize(w, h int) {
	t.titleR = image.Rect(0, 0, w, 1)
	t.errorR = image.Rect(0, h-1, w, h)
	t.helpR = t.errorR.Sub(image.Pt(0, 1))
	t.statusR = t.helpR.Sub(image.Pt(0, 1))
	t.diagramR = image.Rect(0, t.titleR.Max.Y, w, t.statusR.Min.Y)

	t.screen.Clear()
	t.drawAll()
}

func (t *tui) drawAll() {
	t.drawTitle()
	t.drawDiagram()
	t.drawStatus()
	t.drawHelp()
	t.drawError()
}

func (t *tui) drawTitle() {
	t.clear(t.titleR)
	x := t.drawString(t.titleR.Min, t.titleR.Max.X, t.title, styleBold)
	if len(t.diagrams) > 1 || t.diagram().ID != "" {
		info := fmt.Sprintf("  %s (%d/%d)", t.diagram().ID, t.current+1, len(t.diagrams))
		t.drawString(image.Pt(x, t.titleR.Min.Y), t.titleR.Max.X, info, styleDim)
	}
}

func (t *tui) drawHelp() {
	t.clear(t.helpR)
	t.drawString(t.helpR.Min, t.helpR.Max.X,
		"tab: next diagram  a/b/space: select endpoint  hjkl/arrows: move  drag numbers to scrub  q: quit",
		styleDim)
}

// setNewErr shows err in the error bar until it is replaced or three seconds
// pass.
func (t *tui) setNewErr(err error) {
	t.logger.Print(err)

	// if there's an existing timeout routine running, stop it
	if t.errTimeoutCancel != nil {
		close(t.errTimeoutCancel)
	}

	t.visibleErr = err
	t.drawError()

	cancel := make(chan struct{})
	t.errTimeoutCancel = cancel
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		select {
		case <-time.After(time.Second * 3):
			select {
			case t.clearErrCh <- struct{}{}:
			case <-cancel:
			}
		case <-cancel:
		}
	}()
}

func (t *tui) loop() error {
	defer t.wg.Wait()
	quit := make(chan struct{})
	defer close(quit)
	defer t.close()

	screenEvCh := make(chan tcell.Event)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.screen.ChannelEvents(screenEvCh, quit)
	}()

	t.screen.Show()

	for {
		select {
		case <-t.clearErrCh:
			t.visibleErr = nil
			t.errTimeoutCancel = nil
			t.drawError()

		case ev := <-screenEvCh:
			done, err := t.handleEvent(ev)
			if err != nil || done {
				return err
			}
		}

		if !t.screen.HasPendingEvent() {
			t.screen.Show()
		}
	}
}

// handleEvent reacts to a single screen event. It reports whether the tui
// should exit.
func (t *tui) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventError:
		return true, fmt.Errorf("got error event: %w", ev)

	case *tcell.EventResize:
		t.resize(ev.Size())

	case *tcell.EventMouse:
		t.handleMouse(ev)

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true, nil

		case tcell.KeyTab:
			t.focus(t.current + 1)

		case tcell.KeyBacktab:
			t.focus(t.current - 1)

		case tcell.KeyLeft:
			t.move(-1, 0)

		case tcell.KeyRight:
			t.move(1, 0)

		case tcell.KeyUp:
			t.move(0, -1)

		case tcell.KeyDown:
			t.move(0, 1)

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true, nil

			case 'a', 'A':
				t.selected = diagram.HandleA
				t.drawStatus()

			case 'b', 'B':
				t.selected = diagram.HandleB
				t.drawStatus()

			case ' ':
				t.selected = t.selected.Other()
				t.redraw()

			case 'h':
				t.move(-1, 0)

			case 'j':
				t.move(0, 1)

			case 'k':
				t.move(0, -1)

			case 'l':
				t.move(1, 0)
			}
		}

	default:
		t.logger.Printf("unhandled event type: %T", ev)
	}

	return false, nil
}

func (t *tui) focus(i int) {
	n := len(t.diagrams)
	t.current = ((i % n) + n) % n
	t.pressed, t.dragging, t.scrubbing = false, false, nil
	t.drawAll()
}

func (t *tui) move(dx, dy int) {
	d := t.diagram()
	if !d.HasHandles() {
		t.setNewErr(errNoHandles)
		return
	}

	d.MoveBy(t.selected, dx, dy)
	t.redraw()
}

func (t *tui) redraw() {
	t.drawDiagram()
	t.drawStatus()
}

func (t *tui) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		t.pressed, t.dragging, t.scrubbing = false, false, nil
		return
	}

	d := t.diagram()
	switch {
	case t.scrubbing != nil:
		t.scrubbing.s.Move(float64(x-t.scrubbing.startX) * t.ScrubStep)
		t.redraw()

	case t.dragging:
		px, py := t.pixelAt(image.Pt(x, y))
		d.Drag(t.selected, px, py)
		t.redraw()

	case !t.pressed:
		t.pressed = true

		if s := t.scrubberAt(image.Pt(x, y)); s != nil {
			s.Begin()
			t.scrubbing = &scrub{s: s, startX: x}
			return
		}

		if !image.Pt(x, y).In(t.diagramR) {
			return
		}
		if h, ok := d.HandleAt(t.pixelAt(image.Pt(x, y))); ok {
			t.selected = h
			t.dragging = true
			t.drawStatus()
		}
	}
}

// pixelAt returns the pixel position of the centre of the lattice cell under
// screen position p. Positions outside the diagram area map to cells off the
// grid.
func (t *tui) pixelAt(p image.Point) (x, y float64) {
	g := t.diagram().Grid
	cx := math.Floor(float64(p.X-t.diagramR.Min.X) / cellW)
	cy := float64(p.Y - t.diagramR.Min.Y)
	return (cx + 0.5) * g.Scale, (cy + 0.5) * g.Scale
}
