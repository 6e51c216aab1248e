package svg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mtoohey.com/linedraw/internal/cmd"
	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/geom"
	"mtoohey.com/linedraw/internal/testutil/assert"
)

func TestEncode(t *testing.T) {
	d := diagram.New(diagram.Config{A: geom.Pt(0, 0), B: geom.Pt(2, 0)}).
		AddGrid().
		AddLine().
		AddHandles()

	b := &bytes.Buffer{}
	assert.NoError(t, Encode(b, d.Scene()))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.Contains(out, `<svg width="550" height="220"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 250+3, strings.Count(out, "<rect"))
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.True(t, strings.Contains(out, `<rect x="22" y="0" width="21" height="21" style="fill:hsl(0,40%,70%)" />`))
	assert.True(t, strings.Contains(out, `<circle class="draggable" cx="55" cy="11" r="16.5" style="fill:hsl(0,50%,50%)" />`))
	assert.True(t, strings.Contains(out, `<g class="line">`))
}

func TestEncodeClassed(t *testing.T) {
	n := 2
	d := diagram.New(diagram.Config{A: geom.Pt(0, 0), B: geom.Pt(4, 0), Style: diagram.StyleClassed}).
		AddTrack().
		AddInterpolated(nil, &n, 0).
		AddHandles().
		AddInterpolationLabels()

	b := &bytes.Buffer{}
	assert.NoError(t, Encode(b, d.Scene()))
	out := b.String()

	assert.True(t, strings.Contains(out, ".handles .invisible { fill:none }"))
	assert.True(t, strings.Contains(out, ".track > * { stroke:hsl(0,0%,60%);stroke-width:3 }"))
	assert.True(t, strings.Contains(out, `<circle class="visible" cx="11" cy="11" r="6.5" />`))
	assert.True(t, strings.Contains(out, `text-anchor="middle">2</text>`))
	assert.False(t, strings.Contains(out, "style=\""))
}

func TestEncodeEscapes(t *testing.T) {
	s := &diagram.Scene{Width: 10, Height: 10, Groups: []*diagram.Group{{
		Class:  "labels",
		Shapes: []diagram.Shape{{Kind: diagram.KindText, Text: "a<b&c"}},
	}}}

	b := &bytes.Buffer{}
	assert.NoError(t, Encode(b, s))
	assert.True(t, strings.Contains(b.String(), ">a&lt;b&amp;c</text>"))
	assert.True(t, strings.Contains(b.String(), `text-anchor="start"`))
}

func TestEncodeEmpty(t *testing.T) {
	d := diagram.New(diagram.Config{}).AddLerpValues()
	err := Encode(&bytes.Buffer{}, d.Scene())
	assert.True(t, errors.Is(err, diagram.ErrEmptyScene))
}

func testGlobals() cmd.Globals {
	return cmd.Globals{GridWidth: 25, GridHeight: 10, Scale: 22, A: geom.Pt(2, 2), B: geom.Pt(20, 8)}
}

func TestCmd(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.svg")
		assert.NoError(t, Cmd{Variant: "9", Diagram: "interpolate-t", Output: path}.Run(testGlobals()))

		b, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(b), `<g class="interpolated">`))
	})

	t.Run("no such diagram", func(t *testing.T) {
		err := Cmd{Variant: "9", Diagram: "layers", Output: filepath.Join(t.TempDir(), "x.svg")}.Run(testGlobals())
		assert.True(t, errors.Is(err, diagram.ErrNoDiagram))
	})

	t.Run("nothing to draw", func(t *testing.T) {
		err := Cmd{Variant: "5", Output: filepath.Join(t.TempDir(), "x.svg")}.Run(testGlobals())
		assert.True(t, errors.Is(err, diagram.ErrEmptyScene))
	})
}
