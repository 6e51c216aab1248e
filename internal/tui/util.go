package tui

import (
	"image"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mtoohey.com/linedraw/internal/paint"
)

// draw is a wrapper for t.screen.SetContent that sets a point on the screen to
// the given rune and style.
func (t *tui) draw(p image.Point, r rune, s tcell.Style) {
	t.screen.SetContent(p.X, p.Y, r, nil, s)
}

// clear uses d to clear r.
func (t *tui) clear(r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			t.draw(image.Pt(x, y), ' ', styleDefault)
		}
	}
}

func (t *tui) drawString(o image.Point, maxX int, s string, style tcell.Style) (stopX int) {
	c := o
	for r, rl := utf8.DecodeRuneInString(s); len(s) > 0; r, rl = utf8.DecodeRuneInString(s) {
		w := runewidth.RuneWidth(r)
		if c.X+w >= maxX && !(c.X+w == maxX && len(s) == rl) {
			for ; c.X < maxX; c.X++ {
				t.draw(c, '…', style)
			}
			return c.X
		}
		t.draw(c, r, style)

		c.X += w
		s = s[rl:]
	}
	return c.X
}

// tcellColor converts a CSS colour to a terminal colour. Colours that are
// unset or can't be parsed are reported as not ok.
func tcellColor(css string) (tcell.Color, bool) {
	c, err := paint.Parse(css)
	if err != nil || c == nil {
		return tcell.ColorDefault, false
	}

	r, g, b := paint.RGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

var (
	styleDefault = tcell.StyleDefault
	styleDim     = styleDefault.Dim(true)
	styleBold    = styleDefault.Bold(true)
	styleError   = styleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
)
