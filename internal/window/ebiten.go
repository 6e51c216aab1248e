package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mtoohey.com/linedraw/internal/cmd"
	"mtoohey.com/linedraw/internal/diagram"
)

type Cmd struct {
	// Variant is the name of the stage to show, or a fuzzy query for it.
	Variant string `arg:"" optional:"" help:"Name of the variant to show, or a fuzzy query for one."`
}

func (c Cmd) Run(g cmd.Globals) (err error) {
	logger, logCloser, err := g.Logger()
	if err != nil {
		return err
	}
	defer func() {
		closeErr := logCloser.Close()
		if err == nil {
			err = closeErr
		}
	}()

	v, ds, err := g.Build(c.Variant)
	if err != nil {
		return err
	}

	game, err := NewGame(v.Name+": "+v.Title, ds, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(game.Size())
	ebiten.SetWindowTitle("linedraw - " + v.Name)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}

var keyMoves = map[ebiten.Key][2]int{
	ebiten.KeyArrowLeft:  {-1, 0},
	ebiten.KeyH:          {-1, 0},
	ebiten.KeyArrowRight: {1, 0},
	ebiten.KeyL:          {1, 0},
	ebiten.KeyArrowUp:    {0, -1},
	ebiten.KeyK:          {0, -1},
	ebiten.KeyArrowDown:  {0, 1},
	ebiten.KeyJ:          {0, 1},
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.Focus(g.current - 1)
		} else {
			g.Focus(g.current + 1)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.Select(diagram.HandleA)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.Select(diagram.HandleB)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Toggle()
	}
	for k, m := range keyMoves {
		if inpututil.IsKeyJustPressed(k) {
			g.Move(m[0], m[1])
		}
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.Press(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.Motion(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.Release()
	}

	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	d := g.diagram()
	s := d.Scene()
	for _, group := range s.Groups {
		for _, shape := range group.Shapes {
			g.drawShape(screen, group.Class, shape)
		}
	}
	if s.Empty() {
		g.label(screen, "nothing to draw; drag the numbers below", 4, sceneOrigin.Y+4)
	}

	w, _ := g.Size()
	vector.FillRect(screen, 0, 0, float32(w), barH, colorBar, false)
	ebitenutil.DebugPrintAt(screen, g.titleText(), 4, 0)

	y := g.statusY()
	vector.FillRect(screen, 0, float32(y), float32(w), barH, colorBar, false)
	for _, item := range g.statusItems() {
		ebitenutil.DebugPrintAt(screen, item.text, item.x, y)
		if item.s != nil {
			vector.StrokeLine(screen, float32(item.x), float32(y+barH-2),
				float32(item.x+len(item.text)*charW), float32(y+barH-2), 1, color.White, false)
		}
	}
}

func (g *Game) drawShape(screen *ebiten.Image, group string, s diagram.Shape) {
	p := s.Resolve(group)
	fill, stroke := g.color(p.Fill), g.color(p.Stroke)
	width := float32(p.Width)
	if width == 0 {
		width = 1
	}

	ox, oy := float32(sceneOrigin.X), float32(sceneOrigin.Y)
	x, y := float32(s.X)+ox, float32(s.Y)+oy

	switch s.Kind {
	case diagram.KindRect:
		if fill != nil {
			vector.FillRect(screen, x, y, float32(s.W), float32(s.H), fill, false)
		}
		if stroke != nil {
			vector.StrokeRect(screen, x, y, float32(s.W), float32(s.H), width, stroke, false)
		}

	case diagram.KindCircle:
		if fill != nil {
			vector.FillCircle(screen, x, y, float32(s.R), fill, true)
		}
		if stroke != nil {
			vector.StrokeCircle(screen, x, y, float32(s.R), width, stroke, true)
		}

	case diagram.KindLine:
		if stroke != nil {
			vector.StrokeLine(screen, x, y, float32(s.X2)+ox, float32(s.Y2)+oy, width, stroke, true)
		}

	case diagram.KindText:
		tw := len(s.Text) * charW
		tx := int(x)
		switch s.Anchor {
		case "middle":
			tx -= tw / 2
		case "end":
			tx -= tw
		}
		// the debug font only draws white, so labels sit on a dark tab
		g.label(screen, s.Text, tx, int(y)-12)
	}
}

func (g *Game) label(screen *ebiten.Image, text string, x, y int) {
	vector.FillRect(screen, float32(x-1), float32(y), float32(len(text)*charW+2), barH, colorBar, false)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

var _ ebiten.Game = (*Game)(nil)
