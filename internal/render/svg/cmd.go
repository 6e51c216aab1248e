package svg

import (
	"fmt"

	"mtoohey.com/linedraw/internal/cmd"
	"mtoohey.com/linedraw/internal/diagram"
)

type Cmd struct {
	// Variant is the name of the stage to export, or a fuzzy query for it.
	Variant string `arg:"" optional:"" help:"Name of the variant to export, or a fuzzy query for one."`
	// Diagram is the ID of the diagram to export.
	Diagram string `short:"d" help:"ID of the diagram to export. Defaults to the variant's first diagram."`
	// Output is the path of the file to write, or "-" for standard output.
	Output string `short:"o" default:"-" help:"Path of the file to write, or \"-\" for standard output."`
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

	d, err := diagram.Find(ds, c.Diagram)
	if err != nil {
		return err
	}

	w, err := cmd.CreateOutput(c.Output)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := w.Close()
		if err == nil {
			err = closeErr
		}
	}()

	if err := Encode(w, d.Scene()); err != nil {
		return fmt.Errorf("failed to export diagram %q: %w", d.ID, err)
	}

	logger.Printf("exported %s/%s as svg to %s", v.Name, d.ID, c.Output)
	return nil
}
