package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"mtoohey.com/linedraw/internal/geom"
	"mtoohey.com/linedraw/internal/testutil/assert"
)

func TestParsePoint(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := ParsePoint("3, -4.5")
		assert.NoError(t, err)
		assert.Equal(t, geom.Pt(3, -4.5), p)
	})

	for _, s := range []string{"3", "x,4", "3,", ""} {
		t.Run(s, func(t *testing.T) {
			_, err := ParsePoint(s)
			assert.True(t, err != nil)
		})
	}
}

func TestTypeMappers(t *testing.T) {
	var cli struct {
		Globals
		P geom.Point `arg:""`
	}

	parser, err := kong.New(&cli, TypeMappers...)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	_, err = parser.Parse([]string{"-A", "1,2", "7,8"})
	assert.NoError(t, err)
	assert.Equal(t, geom.Pt(1, 2), cli.A)
	assert.Equal(t, geom.Pt(20, 8), cli.B)
	assert.Equal(t, geom.Pt(7, 8), cli.P)
	assert.Equal(t, 25, cli.GridWidth)
	assert.Equal(t, 22.0, cli.Scale)
}

func TestReadArgs(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		args, err := readArgs(filepath.Join(t.TempDir(), "globals.conf"))
		assert.NoError(t, err)
		assert.Len(t, 0, args)
	})

	t.Run("present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "globals.conf")
		assert.NoError(t, os.WriteFile(path, []byte("--scale 30\n-A 1,1\n"), 0o600))

		args, err := readArgs(path)
		assert.NoError(t, err)
		assert.Equal(t, []string{"--scale", "30", "-A", "1,1"}, args)
	})
}

func TestOptions(t *testing.T) {
	g := Globals{GridWidth: 5, GridHeight: 4, Scale: 10, A: geom.Pt(0, 0), B: geom.Pt(4, 3)}

	o, err := g.Options()
	assert.NoError(t, err)
	assert.Equal(t, 5, o.Grid.W)
	assert.Equal(t, geom.Pt(4, 3), o.B)

	g.GridWidth = 0
	_, err = g.Options()
	assert.True(t, err != nil)

	g.GridWidth, g.Scale = 5, -1
	_, err = g.Options()
	assert.True(t, err != nil)

	g.Scale, g.A = 10, geom.Pt(0.4, 0)
	_, err = g.Options()
	assert.True(t, err != nil)

	g.A, g.B = geom.Pt(0, 0), geom.Pt(2.4, 0)
	_, err = g.Options()
	assert.True(t, err != nil)
}

func TestBuild(t *testing.T) {
	g := Globals{GridWidth: 25, GridHeight: 10, Scale: 22, A: geom.Pt(2, 2), B: geom.Pt(20, 8)}

	v, ds, err := g.Build("9")
	assert.NoError(t, err)
	assert.Equal(t, "9", v.Name)
	assert.Len(t, 3, ds)
}

func TestLogger(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		l, c, err := Globals{}.Logger()
		assert.NoError(t, err)
		l.Print("dropped")
		assert.NoError(t, c.Close())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "linedraw.log")
		l, c, err := Globals{LogPath: path}.Logger()
		assert.NoError(t, err)
		l.Print("hello")
		assert.NoError(t, c.Close())

		b, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.True(t, len(b) > len("hello"))
	})
}

func TestCreateOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		w, err := CreateOutput("-")
		assert.NoError(t, err)
		assert.NoError(t, w.Close())

		_, err = os.Stdout.Stat()
		assert.NoError(t, err)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.svg")
		w, err := CreateOutput(path)
		assert.NoError(t, err)
		_, err = w.Write([]byte("<svg/>"))
		assert.NoError(t, err)
		assert.NoError(t, w.Close())

		b, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "<svg/>", string(b))
	})
}
