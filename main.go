package main

import (
	"os"

	"github.com/alecthomas/kong"

	"mtoohey.com/linedraw/internal/cmd"
	"mtoohey.com/linedraw/internal/points"
	"mtoohey.com/linedraw/internal/render/raster"
	"mtoohey.com/linedraw/internal/render/svg"
	"mtoohey.com/linedraw/internal/tui"
	"mtoohey.com/linedraw/internal/variant"
	"mtoohey.com/linedraw/internal/window"
)

type cli struct {
	cmd.Globals

	TUI      tui.Cmd     `cmd:"" name:"tui" default:"withargs" help:"Explore a variant in the terminal."`
	Window   window.Cmd  `cmd:"" help:"Explore a variant in a window."`
	SVG      svg.Cmd     `cmd:"" name:"svg" help:"Export a diagram as SVG."`
	PNG      raster.Cmd  `cmd:"" name:"png" help:"Export a diagram as PNG, or show it in the terminal."`
	Points   points.Cmd  `cmd:"" help:"List the samples taken along a line."`
	Variants variant.Cmd `cmd:"" help:"List the variants, optionally filtered by a fuzzy query."`
}

func main() {
	var c cli
	parser := kong.Must(&c, append([]kong.Option{
		kong.Name("linedraw"),
		kong.Description("Interactive diagrams of drawing lines on a grid by linear interpolation."),
		kong.UsageOnError(),
	}, cmd.TypeMappers...)...)

	cfgArgs, err := cmd.LoadGlobalsConfig()
	parser.FatalIfErrorf(err)

	ctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	parser.FatalIfErrorf(ctx.Run(c.Globals))
}
