package canvas

import (
	"image"
	"image/color"
	"testing"

	"eggpaint/internal/config"
	"eggpaint/internal/egg"
	"eggpaint/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T) *EggCanvas {
	t.Helper()
	c, err := egg.ComposeNamed("cornflowerblue", "black", "flat", 0.2, 0, config.Default())
	require.NoError(t, err)
	return NewEggCanvas(c.Placed(0.25, c.Position), colorutil.Backdrop)
}

func TestRenderCentresEgg(t *testing.T) {
	ec := newTestCanvas(t)

	var first image.Point
	calls := 0
	ec.OnFirstDraw(func(w, h int) {
		calls++
		first = image.Pt(w, h)
	})

	img := ec.Render(320, 400)
	require.Equal(t, image.Rect(0, 0, 320, 400), img.Bounds())
	assert.Equal(t, 1, calls)
	assert.Equal(t, image.Pt(320, 400), first)

	centre := color.RGBAModel.Convert(img.At(160, 200)).(color.RGBA)
	assert.Equal(t, colorutil.Black, centre, "flat fill at the centre")
	corner := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	assert.Equal(t, colorutil.Backdrop, corner)

	// A resize re-centres the same egg but does not count as a first draw.
	img = ec.Render(640, 480)
	assert.Equal(t, 1, calls)
	centre = color.RGBAModel.Convert(img.At(320, 240)).(color.RGBA)
	assert.Equal(t, colorutil.Black, centre)
}

func TestRenderReusesFrameForSameSize(t *testing.T) {
	ec := newTestCanvas(t)
	a := ec.Render(200, 300)
	b := ec.Render(200, 300)
	assert.Same(t, a.(*image.RGBA), b.(*image.RGBA))

	c := ec.Render(201, 300)
	assert.NotSame(t, a.(*image.RGBA), c.(*image.RGBA))
}
