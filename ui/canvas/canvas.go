// Package canvas provides the full-window widget that shows the egg.
package canvas

import (
	"image"
	"image/color"
	"sync"

	"eggpaint/internal/egg"
	"eggpaint/internal/render"
	"eggpaint/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// EggCanvas renders one composite egg centred in whatever space it is given.
// The composite never changes; resizing only re-centres it.
type EggCanvas struct {
	widget.BaseWidget

	egg      egg.Composite
	backdrop color.Color
	raster   *fynecanvas.Raster

	mu         sync.Mutex
	lastSize   image.Point
	lastOutput image.Image
	drawn      bool

	onFirstDraw func(w, h int)
}

// NewEggCanvas creates a canvas for c painted over backdrop.
func NewEggCanvas(c egg.Composite, backdrop color.Color) *EggCanvas {
	ec := &EggCanvas{
		egg:      c,
		backdrop: backdrop,
	}
	ec.raster = fynecanvas.NewRaster(ec.Render)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels
	ec.ExtendBaseWidget(ec)
	return ec
}

// OnFirstDraw sets a callback run after the first frame is rendered, with
// the surface size in pixels.
func (ec *EggCanvas) OnFirstDraw(callback func(w, h int)) {
	ec.onFirstDraw = callback
}

// Render is the raster generator. It draws the egg centred on a w × h
// surface, reusing the previous frame when the size has not changed.
func (ec *EggCanvas) Render(w, h int) image.Image {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	size := image.Pt(w, h)
	if ec.lastOutput != nil && size == ec.lastSize {
		return ec.lastOutput
	}

	centre := geometry.NewPoint2D(float64(w)/2, float64(h)/2)
	output := render.Image(ec.egg.Placed(ec.egg.Scale, centre), w, h, ec.backdrop)
	ec.lastSize = size
	ec.lastOutput = output

	if !ec.drawn {
		ec.drawn = true
		if ec.onFirstDraw != nil {
			ec.onFirstDraw(w, h)
		}
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (ec *EggCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &eggCanvasRenderer{canvas: ec}
}

type eggCanvasRenderer struct {
	canvas *EggCanvas
}

func (r *eggCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *eggCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *eggCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *eggCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *eggCanvasRenderer) Destroy() {}
