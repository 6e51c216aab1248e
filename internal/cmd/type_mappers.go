package cmd

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"mtoohey.com/linedraw/internal/geom"

	"github.com/alecthomas/kong"
)

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	kong.TypeMapper(reflect.TypeOf(geom.Point{}), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("point", &s); err != nil {
			return err
		}

		p, err := ParsePoint(s)
		if err != nil {
			return err
		}

		target.Set(reflect.ValueOf(p))
		return nil
	})),
}

// ParsePoint parses a point written as "x,y".
func ParsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf(`must be of the form "x,y" but got "%s"`, s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf(`invalid x coordinate "%s": %w`, xs, err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf(`invalid y coordinate "%s": %w`, ys, err)
	}

	return geom.Pt(x, y), nil
}
