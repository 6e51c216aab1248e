package tui

import (
	"image"

	"github.com/mattn/go-runewidth"

	"mtoohey.com/linedraw/internal/diagram"
)

type scrubHit struct {
	r image.Rectangle
	s *diagram.Scrubber
}

// drawStatus lists the selected endpoint, the scrubbable numbers and the
// text outputs of the current diagram. The values of scrubbable numbers are
// underlined and remembered so presses on them start a scrub.
func (t *tui) drawStatus() {
	t.clear(t.statusR)
	t.scrubHits = t.scrubHits[:0]

	d := t.diagram()
	c := t.statusR.Min

	item := func(name, value string, s *diagram.Scrubber) {
		if c.X > t.statusR.Min.X {
			c.X += 2
		}
		c.X = t.drawString(c, t.statusR.Max.X, name+"=", styleDim)

		style := styleDefault
		if s != nil {
			style = style.Underline(true)
		}
		stopX := t.drawString(c, t.statusR.Max.X, value, style)
		if s != nil {
			w := runewidth.StringWidth(value)
			t.scrubHits = append(t.scrubHits, scrubHit{
				r: image.Rect(c.X, c.Y, c.X+w, c.Y+1),
				s: s,
			})
		}
		c.X = stopX
	}

	if d.HasHandles() {
		item("selected", t.selected.String(), nil)
		item("A", d.A.String(), nil)
		item("B", d.B.String(), nil)
	}
	for _, s := range d.Scrubbers() {
		item(s.Name, s.Text(), s)
	}
	for _, o := range d.Outputs() {
		item(o.Name, o.Text, nil)
	}
}

func (t *tui) scrubberAt(p image.Point) *diagram.Scrubber {
	for _, h := range t.scrubHits {
		if p.In(h.r) {
			return h.s
		}
	}

	return nil
}
