package tui

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/geom"
)

// cellW is the number of terminal columns per lattice cell, which keeps
// cells roughly square.
const cellW = 2

func (t *tui) drawDiagram() {
	t.clear(t.diagramR)

	d := t.diagram()
	s := d.Scene()
	if s.Empty() {
		t.drawString(t.diagramR.Min.Add(image.Pt(1, 1)), t.diagramR.Max.X,
			"nothing to draw; drag the numbers below", styleDim)
		return
	}

	for _, g := range s.Groups {
		for _, shape := range g.Shapes {
			t.drawShape(d, g.Class, shape)
		}
	}
}

// cellPoint returns the screen position of the left column of cell c.
func (t *tui) cellPoint(c geom.Point) image.Point {
	return t.diagramR.Min.Add(image.Pt(int(c.X)*cellW, int(c.Y)))
}

// drawCell fills cell c with runes. Cells off the grid and columns outside
// the diagram area are skipped.
func (t *tui) drawCell(c geom.Point, runes [cellW]rune, style tcell.Style) {
	if !t.diagram().Grid.Contains(c) {
		return
	}

	p := t.cellPoint(c)
	for i, r := range runes {
		if q := p.Add(image.Pt(i, 0)); q.In(t.diagramR) {
			t.draw(q, r, style)
		}
	}
}

func (t *tui) drawShape(d *diagram.Diagram, group string, s diagram.Shape) {
	p := s.Resolve(group)
	fill, hasFill := tcellColor(p.Fill)
	stroke, hasStroke := tcellColor(p.Stroke)

	switch s.Kind {
	case diagram.KindRect:
		if group == "grid" {
			style := styleDefault
			if hasFill {
				style = style.Background(fill)
			}
			if hasStroke {
				style = style.Foreground(stroke)
			}
			t.drawCell(s.Cell, [cellW]rune{'·', ' '}, style)
			return
		}

		if hasFill {
			t.drawCell(s.Cell, [cellW]rune{'█', '█'}, styleDefault.Foreground(fill))
		}

	case diagram.KindLine:
		style := styleDim
		if hasStroke {
			style = styleDefault.Foreground(stroke)
		}
		from := d.Grid.Cell(s.X, s.Y)
		to := d.Grid.Cell(s.X2, s.Y2)
		for _, c := range geom.PointsOnLine(from, to) {
			t.drawCell(c, [cellW]rune{'░', '░'}, style)
		}

	case diagram.KindCircle:
		if s.Text == "" {
			style := styleDefault
			if hasFill {
				style = style.Foreground(fill)
			}
			t.drawCell(s.Cell, [cellW]rune{'●', ' '}, style)
			return
		}

		// handles; the invisible hit target has no fill
		if !hasFill && s.Class == "invisible" {
			return
		}
		if !hasFill {
			fill = tcell.ColorRed
		}
		style := styleBold.Background(fill).Foreground(tcell.ColorBlack)
		if s.Text == t.selected.String() {
			style = style.Underline(true)
		}
		label := []rune(s.Text)
		t.drawCell(s.Cell, [cellW]rune{label[0], ' '}, style)

	case diagram.KindText:
		style := styleDefault
		if hasFill {
			style = style.Foreground(fill)
		}
		o := t.cellPoint(s.Cell)
		if !d.Grid.Contains(s.Cell) || !o.In(t.diagramR) {
			return
		}
		t.drawString(o, t.diagramR.Max.X, s.Text, style)
	}
}
