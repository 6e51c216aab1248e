package paint

import (
	"errors"
	"image/color"
	"testing"

	"mtoohey.com/linedraw/internal/testutil/assert"
)

func TestParse(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		for _, s := range []string{"", "none", " None "} {
			c, err := Parse(s)
			assert.NoError(t, err)
			assert.Equal(t, nil, c)
		}
	})

	t.Run("named", func(t *testing.T) {
		c, err := Parse("white")
		assert.NoError(t, err)
		assert.Equal(t, color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}), c)
	})

	t.Run("short hex", func(t *testing.T) {
		c, err := Parse("#f0a")
		assert.NoError(t, err)
		assert.Equal(t, color.Color(color.RGBA{0xff, 0x00, 0xaa, 0xff}), c)
	})

	t.Run("long hex", func(t *testing.T) {
		c, err := Parse("#102030")
		assert.NoError(t, err)
		assert.Equal(t, color.Color(color.RGBA{0x10, 0x20, 0x30, 0xff}), c)
	})

	t.Run("hsl grey", func(t *testing.T) {
		c, err := Parse("hsl(0,0%,100%)")
		assert.NoError(t, err)
		assert.Equal(t, color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}), c)
	})

	t.Run("hsl red", func(t *testing.T) {
		c, err := Parse("hsl(0, 100%, 50%)")
		assert.NoError(t, err)
		r, g, b := RGB(c)
		assert.Equal(t, [3]uint8{0xff, 0, 0}, [3]uint8{r, g, b})
	})

	t.Run("hsl line colour is reddish", func(t *testing.T) {
		r, g, b := RGB(MustParse("hsl(0,40%,70%)"))
		assert.True(t, r > g && g == b)
	})

	t.Run("malformed hsl", func(t *testing.T) {
		_, err := Parse("hsl(0,40,70)")
		assert.True(t, err != nil)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Parse("rebeccapurple")
		assert.True(t, errors.Is(err, ErrUnsupported))
	})
}

func TestRGB(t *testing.T) {
	r, g, b := RGB(nil)
	assert.Equal(t, [3]uint8{}, [3]uint8{r, g, b})
}
