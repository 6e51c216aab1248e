package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mtoohey.com/linedraw/internal/cmd"
)

type Cmd struct {
	// Variant is the name of the stage to show, or a fuzzy query for it.
	Variant string `arg:"" optional:"" help:"Name of the variant to show, or a fuzzy query for one."`
	// ScrubStep is the number of pixels a scrubbable number is dragged by
	// for every terminal column the mouse moves.
	ScrubStep float64 `short:"s" default:"4" help:"Pixels a scrubbable number moves per terminal column dragged."`
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	tui, err := newTUI(c, g, logger, screen, v.Name+": "+v.Title, ds)
	if err != nil {
		return fmt.Errorf("failed to create tui: %w", err)
	}

	return tui.loop()
}
