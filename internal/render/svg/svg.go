// Package svg writes diagram scenes as standalone SVG documents.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"mtoohey.com/linedraw/internal/diagram"
)

const (
	header = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"
	svgTag = "<svg width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n"

	groupTag  = "  <g class=\"%s\">\n"
	rectTag   = "    <rect%s x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\"%s />\n"
	circleTag = "    <circle%s cx=\"%g\" cy=\"%g\" r=\"%g\"%s />\n"
	lineTag   = "    <line%s x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"%s />\n"
	textTag   = "    <text%s x=\"%g\" y=\"%g\" text-anchor=\"%s\"%s>%s</text>\n"

	font = "font-family:sans-serif;font-size:12px"
)

// Encode writes s to w as an SVG document. Shapes with their own colours are
// styled inline and the rest are styled by class through a stylesheet
// generated from diagram.Stylesheet.
func Encode(w io.Writer, s *diagram.Scene) error {
	if s.Empty() {
		return diagram.ErrEmptyScene
	}

	b := &bytes.Buffer{}
	_, _ = io.WriteString(b, header)
	_, _ = fmt.Fprintf(b, svgTag, s.Width, s.Height, s.Width, s.Height)
	writeStylesheet(b)

	for _, g := range s.Groups {
		_, _ = fmt.Fprintf(b, groupTag, escape(g.Class))
		for _, shape := range g.Shapes {
			writeShape(b, g.Class, shape)
		}
		_, _ = io.WriteString(b, "  </g>\n")
	}

	_, _ = io.WriteString(b, "</svg>\n")

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func writeStylesheet(b *bytes.Buffer) {
	keys := make([]string, 0, len(diagram.Stylesheet))
	for k := range diagram.Stylesheet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_, _ = io.WriteString(b, "  <style>\n")
	_, _ = fmt.Fprintf(b, "    text { %s }\n", font)
	for _, k := range keys {
		group, class, _ := strings.Cut(k, " ")
		selector := "." + group + " > *"
		if class != "" {
			selector = "." + group + " ." + class
		}
		_, _ = fmt.Fprintf(b, "    %s { %s }\n", selector, declarations(diagram.Stylesheet[k]))
	}
	_, _ = io.WriteString(b, "  </style>\n")
}

func writeShape(b *bytes.Buffer, group string, s diagram.Shape) {
	class := ""
	if s.Class != "" {
		class = fmt.Sprintf(" class=\"%s\"", escape(s.Class))
	}

	style := ""
	if s.Fill != "" || s.Stroke != "" {
		style = fmt.Sprintf(" style=\"%s\"", escape(declarations(s.Resolve(group))))
	}

	switch s.Kind {
	case diagram.KindRect:
		_, _ = fmt.Fprintf(b, rectTag, class, s.X, s.Y, s.W, s.H, style)
	case diagram.KindCircle:
		_, _ = fmt.Fprintf(b, circleTag, class, s.X, s.Y, s.R, style)
	case diagram.KindLine:
		_, _ = fmt.Fprintf(b, lineTag, class, s.X, s.Y, s.X2, s.Y2, style)
	case diagram.KindText:
		anchor := s.Anchor
		if anchor == "" {
			anchor = "start"
		}
		_, _ = fmt.Fprintf(b, textTag, class, s.X, s.Y, escape(anchor), style, escape(s.Text))
	}
}

func declarations(p diagram.Paint) string {
	var parts []string
	if p.Fill != "" {
		parts = append(parts, "fill:"+p.Fill)
	}
	if p.Stroke != "" {
		parts = append(parts, "stroke:"+p.Stroke)
		if p.Width != 0 {
			parts = append(parts, fmt.Sprintf("stroke-width:%g", p.Width))
		}
	}
	return strings.Join(parts, ";")
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}
