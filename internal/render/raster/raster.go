// Package raster draws diagram scenes into images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/paint"
)

// Background is painted under the scene.
var Background color.Color = color.White

// Rasterizer paints shapes into an image.
type Rasterizer struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	face   font.Face
}

// NewRasterizer creates a rasterizer for an image of the given size, filled
// with Background.
func NewRasterizer(width, height int) *Rasterizer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Rasterizer{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
		face:   basicfont.Face7x13,
	}
}

// Image returns the image painted so far.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Scene paints every shape of s in order.
func (r *Rasterizer) Scene(s *diagram.Scene) error {
	for _, g := range s.Groups {
		for _, shape := range g.Shapes {
			if err := r.Shape(g.Class, shape); err != nil {
				return err
			}
		}
	}

	return nil
}

// Shape paints s as a member of group.
func (r *Rasterizer) Shape(group string, s diagram.Shape) error {
	p := s.Resolve(group)
	fill, err := paint.Parse(p.Fill)
	if err != nil {
		return fmt.Errorf("failed to parse fill: %w", err)
	}
	stroke, err := paint.Parse(p.Stroke)
	if err != nil {
		return fmt.Errorf("failed to parse stroke: %w", err)
	}

	switch s.Kind {
	case diagram.KindRect:
		outline := func(a rasterx.Adder) {
			rasterx.AddRect(s.X, s.Y, s.X+s.W, s.Y+s.H, 0, a)
		}
		r.fill(fill, outline)
		r.stroke(stroke, p.Width, outline)

	case diagram.KindCircle:
		outline := func(a rasterx.Adder) {
			rasterx.AddCircle(s.X, s.Y, s.R, a)
		}
		r.fill(fill, outline)
		r.stroke(stroke, p.Width, outline)

	case diagram.KindLine:
		r.stroke(stroke, p.Width, func(a rasterx.Adder) {
			a.Start(rasterx.ToFixedP(s.X, s.Y))
			a.Line(rasterx.ToFixedP(s.X2, s.Y2))
			a.Stop(false)
		})

	case diagram.KindText:
		if fill == nil {
			fill = color.Black
		}
		r.text(fill, s)
	}

	return nil
}

func (r *Rasterizer) fill(c color.Color, outline func(rasterx.Adder)) {
	if c == nil {
		return
	}

	r.filler.Clear()
	outline(r.filler)
	r.filler.SetColor(c)
	r.filler.Draw()
}

func (r *Rasterizer) stroke(c color.Color, width float64, outline func(rasterx.Adder)) {
	if c == nil {
		return
	}
	if width == 0 {
		width = 1
	}

	r.dasher.Clear()
	r.dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	outline(r.dasher)
	r.dasher.SetColor(c)
	r.dasher.Draw()
}

func (r *Rasterizer) text(c color.Color, s diagram.Shape) {
	x := fixed.I(int(math.Round(s.X)))
	switch s.Anchor {
	case "middle":
		x -= font.MeasureString(r.face, s.Text) / 2
	case "end":
		x -= font.MeasureString(r.face, s.Text)
	}

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.I(int(math.Round(s.Y)))},
	}
	d.DrawString(s.Text)
}

// Render paints s into a new image of the scene's size.
func Render(s *diagram.Scene) (*image.RGBA, error) {
	if s.Empty() {
		return nil, diagram.ErrEmptyScene
	}

	r := NewRasterizer(int(math.Ceil(s.Width)), int(math.Ceil(s.Height)))
	if err := r.Scene(s); err != nil {
		return nil, err
	}

	return r.Image(), nil
}

// Encode renders s and writes it to w as a PNG.
func Encode(w io.Writer, s *diagram.Scene) error {
	img, err := Render(s)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
