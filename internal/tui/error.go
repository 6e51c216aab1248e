package tui

import (
	"image"

	"github.com/mattn/go-runewidth"
)

func (t *tui) drawError() {
	t.clear(t.errorR)
	if t.visibleErr == nil {
		return
	}

	errString := t.visibleErr.Error()
	errLen := runewidth.StringWidth(errString)

	if errLen+2 > t.errorR.Dx() {
		t.draw(t.errorR.Min, ' ', styleError)
		t.drawString(t.errorR.Min.Add(image.Pt(1, 0)), t.errorR.Max.X-1, errString, styleError)
	} else {
		padP := t.errorR.Min.Add(image.Pt(t.errorR.Dx()-errLen-2, 0))
		t.draw(padP, ' ', styleError)
		t.drawString(padP.Add(image.Pt(1, 0)), t.errorR.Max.X-1, errString, styleError)
	}
	t.draw(t.errorR.Max.Add(image.Pt(-1, -1)), ' ', styleError)
}
