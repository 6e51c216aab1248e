// Package points prints the samples taken along a line, either as the cells
// of the rasterized line or as the raw interpolation points for a given
// number of steps.
package points

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"

	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/geom"
)

// Sample is one point along the line, as made available to templates.
type Sample struct {
	// I is the index of the sample, from 0.
	I int
	// T is the interpolation parameter the sample was taken at.
	T float64
	geom.Point
}

type Cmd struct {
	A geom.Point `arg:"" help:"Start of the line, as x,y."`
	B geom.Point `arg:"" help:"End of the line, as x,y."`
	// N is the number of interpolation steps. Negative values select the
	// line distance, which gives the rasterized line.
	N int `short:"n" default:"-1" help:"Number of interpolation steps. Defaults to the line distance, giving the cells of the rasterized line."`
	// Round rounds the samples to cells. It is implied when N is negative,
	// in which case A and B are rounded to cells as well.
	Round bool `short:"r" help:"Round samples to cells. Implied when -n isn't given."`
	// Template is a text/template executed once per sample.
	Template string `short:"t" help:"Go text/template executed for each sample, e.g. '{{.X}} {{.Y}}'. Fields are I, T, X and Y."`
}

func (c Cmd) Run() error {
	return c.write(os.Stdout)
}

// Samples returns the samples c describes.
func (c Cmd) Samples() []Sample {
	a, b := c.A, c.B
	n, round := c.N, c.Round
	if n < 0 {
		a, b = a.Round(), b.Round()
		n = int(geom.LineDistance(a, b))
		round = true
	}

	points := geom.InterpolationPoints(a, b, n)
	samples := make([]Sample, len(points))
	for i, p := range points {
		t := 0.0
		if n != 0 {
			t = float64(i) / float64(n)
		}
		if round {
			p = geom.RoundPoint(p)
		}
		samples[i] = Sample{I: i, T: t, Point: p}
	}

	return samples
}

func (c Cmd) write(w io.Writer) error {
	samples := c.Samples()

	if c.Template != "" {
		tmpl, err := template.New("sample").Parse(c.Template)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		for _, s := range samples {
			if err := tmpl.Execute(w, s); err != nil {
				return fmt.Errorf("failed to execute template: %w", err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write failed: %w", err)
			}
		}

		return nil
	}

	rows := [][]string{{"i", "t", "x", "y"}}
	for _, s := range samples {
		rows = append(rows, []string{
			strconv.Itoa(s.I),
			diagram.Format(s.T, 3),
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64),
		})
	}

	return writeTable(w, rows)
}

// writeTable writes rows with each column right aligned to its widest cell.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
