package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"filter-explorer/internal/geom"
)

// Target is the drawing surface a Surface renders into.
type Target interface {
	// Clear fills the whole target with c.
	Clear(c color.Color)
	// DrawImage draws the src region of img scaled into dst.
	DrawImage(img image.Image, dst, src geom.Rect)
}

// ContextTarget renders into a gg drawing context. With the gg/gpu package
// linked the context is GPU accelerated; otherwise it rasterizes on the CPU.
type ContextTarget struct {
	dc *gg.Context
}

func NewContextTarget(width, height int) *ContextTarget {
	return &ContextTarget{dc: gg.NewContext(width, height)}
}

// Resize changes the backing size. Contents are undefined afterwards.
func (t *ContextTarget) Resize(width, height int) error {
	return t.dc.Resize(width, height)
}

// Bounds returns the drawable rectangle
func (t *ContextTarget) Bounds() geom.Rect {
	return geom.NewRect(0, 0, float64(t.dc.Width()), float64(t.dc.Height()))
}

func (t *ContextTarget) Clear(c color.Color) {
	t.dc.ClearWithColor(gg.FromColor(c))
}

// DrawImage scales the src region of img into dst, clipped to the target,
// and composites the result over the current contents.
func (t *ContextTarget) DrawImage(img image.Image, dst, src geom.Rect) {
	dstRect := dst.Rectangle()
	visible := dstRect.Intersect(image.Rect(0, 0, t.dc.Width(), t.dc.Height()))
	if visible.Empty() {
		return
	}

	layer := image.NewRGBA(visible)
	xdraw.BiLinear.Scale(layer, dstRect, img, src.Rectangle(), xdraw.Src, nil)

	t.dc.DrawImage(gg.ImageBufFromImage(layer), float64(visible.Min.X), float64(visible.Min.Y))
}

// Image returns a copy of the rendered frame
func (t *ContextTarget) Image() image.Image {
	_ = t.dc.FlushGPU()
	return t.dc.Image()
}

func (t *ContextTarget) SavePNG(path string) error {
	_ = t.dc.FlushGPU()
	return t.dc.SavePNG(path)
}

func (t *ContextTarget) Close() error {
	return t.dc.Close()
}
