package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/geom"
	"mtoohey.com/linedraw/internal/variant"
)

// Globals contains constant values that apply to multiple commands.
type Globals struct {
	// GridWidth and GridHeight are the number of cells in the grid.
	GridWidth  int `default:"25" help:"Number of cells across the grid."`
	GridHeight int `default:"10" help:"Number of cells down the grid."`
	// Scale is the size of a cell in pixels.
	Scale float64 `default:"22" help:"Size of a grid cell in pixels."`
	// LogPath is the path of the file logs are appended to. Logs are
	// discarded if it isn't provided.
	LogPath string `short:"l" type:"path" help:"The path of the file logs should be appended to."`
	// A and B are the initial endpoints of every diagram.
	A geom.Point `short:"A" default:"2,2" help:"Initial position of endpoint A, as x,y."`
	B geom.Point `short:"B" default:"20,8" help:"Initial position of endpoint B, as x,y."`
}

// Options returns the variant options described by g.
func (g Globals) Options() (variant.Options, error) {
	if g.GridWidth <= 0 || g.GridHeight <= 0 {
		return variant.Options{}, fmt.Errorf("grid must be at least 1x1 but got %dx%d", g.GridWidth, g.GridHeight)
	}
	if g.Scale <= 0 {
		return variant.Options{}, fmt.Errorf("scale must be positive but got %g", g.Scale)
	}
	if !g.A.IsCell() {
		return variant.Options{}, fmt.Errorf("endpoint A must be a cell with whole coordinates but got %v", g.A)
	}
	if !g.B.IsCell() {
		return variant.Options{}, fmt.Errorf("endpoint B must be a cell with whole coordinates but got %v", g.B)
	}

	return variant.Options{
		Grid: diagram.Grid{W: g.GridWidth, H: g.GridHeight, Scale: g.Scale},
		A:    g.A,
		B:    g.B,
	}, nil
}

// Build looks up the variant called name and builds its diagrams.
func (g Globals) Build(name string) (variant.Variant, []*diagram.Diagram, error) {
	o, err := g.Options()
	if err != nil {
		return variant.Variant{}, nil, err
	}

	v, err := variant.Lookup(name)
	if err != nil {
		return variant.Variant{}, nil, err
	}

	return v, v.Build(o), nil
}

// Logger opens the log file named by LogPath. The returned closer must be
// closed once logging is finished.
func (g Globals) Logger() (*log.Logger, io.Closer, error) {
	if g.LogPath == "" {
		return log.New(io.Discard, "", log.LstdFlags), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(g.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return log.New(f, "", log.LstdFlags), f, nil
}
