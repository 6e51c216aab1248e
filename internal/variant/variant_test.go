package variant

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mtoohey.com/linedraw/internal/diagram"
	"mtoohey.com/linedraw/internal/geom"
	"mtoohey.com/linedraw/internal/testutil/assert"
)

func build(t *testing.T, name string) []*diagram.Diagram {
	t.Helper()

	v, err := Lookup(name)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, name, v.Name)
	return v.Build(DefaultOptions())
}

func TestAllBuild(t *testing.T) {
	for _, v := range All() {
		t.Run(v.Name, func(t *testing.T) {
			ds := v.Build(DefaultOptions())
			if len(ds) == 0 {
				t.Fatal("no diagrams")
			}
			for _, d := range ds {
				assert.Equal(t, geom.Pt(2, 2), d.A)
				assert.Equal(t, geom.Pt(20, 8), d.B)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		v, err := Lookup("")
		assert.NoError(t, err)
		assert.Equal(t, Default, v.Name)
	})

	t.Run("exact", func(t *testing.T) {
		v, err := Lookup("6")
		assert.NoError(t, err)
		assert.Equal(t, "6", v.Name)
	})

	t.Run("fuzzy", func(t *testing.T) {
		v, err := Lookup("numbered")
		assert.NoError(t, err)
		assert.Equal(t, "8", v.Name)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Lookup("zzzzqqq")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestQuery(t *testing.T) {
	assert.Len(t, len(variants), Query(""))
	assert.Len(t, 0, Query("xylophone"))

	matches := Query("grid")
	if assert.True(t, len(matches) > 0) {
		assert.Equal(t, "2-grid", matches[0].Name)
	}
}

func TestClampPolicy(t *testing.T) {
	t.Run("unclamped", func(t *testing.T) {
		d := build(t, "4")[0]
		d.Drag(diagram.HandleA, -50, -50)
		assert.Equal(t, geom.Pt(-3, -3), d.A)
	})

	t.Run("clamped", func(t *testing.T) {
		d := build(t, "12")[0]
		d.Drag(diagram.HandleA, -50, -50)
		assert.Equal(t, geom.Pt(0, 0), d.A)
	})
}

func TestScrubModes(t *testing.T) {
	t.Run("raw t", func(t *testing.T) {
		d := build(t, "6")[0]
		s, ok := d.Scrubber("t")
		assert.True(t, ok)
		assert.True(t, s.Raw)
		assert.Equal(t, 0.3, *d.T)
	})

	t.Run("formatted N", func(t *testing.T) {
		d := build(t, "6-N")[0]
		s, ok := d.Scrubber("N")
		assert.True(t, ok)
		assert.False(t, s.Raw)
		assert.Equal(t, 5, *d.N)
		_, ok = d.Scrubber("t")
		assert.False(t, ok)
	})
}

func TestNine(t *testing.T) {
	ds := build(t, "9")
	assert.Len(t, 3, ds)
	assert.Equal(t, "demo", ds[0].ID)
	assert.True(t, ds[1].Scene().Empty())
	assert.Equal(t, 0.5, *ds[2].T)
}

func TestPointRounding(t *testing.T) {
	d := build(t, "12")[0]
	text, ok := d.Output("optimal-N")
	assert.True(t, ok)
	assert.Equal(t, "18", text)

	var classes []string
	for _, g := range d.Scene().Groups {
		classes = append(classes, g.Class)
	}
	assert.Equal(t, []string{"grid", "track", "rounded", "interpolated", "handles", "interpolation-labels"}, classes)

	unlabelled := build(t, "11")[0]
	assert.Len(t, 5, unlabelled.Scene().Groups)
}

func TestCmd(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		b := &bytes.Buffer{}
		assert.NoError(t, Cmd{}.write(b))

		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		assert.Len(t, len(variants), lines)
		assert.Equal(t, "2-grid    an empty grid (demo)", lines[0])
		assert.Equal(t, "9         all the diagrams so far (demo, linear-interpolation, interpolate-t)", lines[9])
	})

	t.Run("no match", func(t *testing.T) {
		err := Cmd{Query: "xylophone"}.write(&bytes.Buffer{})
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
