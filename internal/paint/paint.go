// Package paint parses the CSS colour strings used by diagram shapes into
// colours the raster, window and terminal frontends can draw with.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupported is returned for colour syntax this package doesn't know.
var ErrUnsupported = errors.New("unsupported colour")

var named = map[string]color.RGBA{
	"white": {0xff, 0xff, 0xff, 0xff},
	"black": {0x00, 0x00, 0x00, 0xff},
	"gray":  {0x80, 0x80, 0x80, 0xff},
	"grey":  {0x80, 0x80, 0x80, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
}

// Parse converts s to a colour. It understands "#rgb", "#rrggbb",
// "hsl(h,s%,l%)" and a handful of names. "none" and "" parse to a nil colour
// with no error, meaning nothing should be painted.
func Parse(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case s == "" || s == "none":
		return nil, nil

	case strings.HasPrefix(s, "hsl("):
		var h, sat, l float64
		compact := strings.ReplaceAll(s, " ", "")
		if _, err := fmt.Sscanf(compact, "hsl(%g,%g%%,%g%%)", &h, &sat, &l); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", s, err)
		}
		return toRGBA(colorful.Hsl(h, sat/100, l/100)), nil

	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", s, err)
		}
		return toRGBA(c), nil
	}

	if c, ok := named[s]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// MustParse is like Parse but panics on error. It is intended for colour
// literals that are fixed at compile time.
func MustParse(s string) color.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

// RGB returns the 8-bit components of c. A nil c is reported as black.
func RGB(c color.Color) (r, g, b uint8) {
	if c == nil {
		return 0, 0, 0
	}

	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return rgba.R, rgba.G, rgba.B
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}
