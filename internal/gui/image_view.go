package gui

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/sirupsen/logrus"

	"filter-explorer/internal/filters"
	"filter-explorer/internal/geom"
	"filter-explorer/internal/render"
)

// FilteredImageView hosts a render.Surface inside a Fyne raster. The raster
// generator is the host draw callback; Refresh is the invalidation hook.
type FilteredImageView struct {
	mu      sync.Mutex
	surface *render.Surface
	target  *render.ContextTarget
	raster  *canvas.Raster
	logger  *logrus.Entry
}

func NewFilteredImageView(logger *logrus.Entry) *FilteredImageView {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	v := &FilteredImageView{
		target: render.NewContextTarget(1, 1),
		logger: logger,
	}
	v.surface = render.NewSurface(v.target, logger)
	v.raster = canvas.NewRaster(v.generate)
	v.raster.SetMinSize(fyne.NewSize(160, 120))
	v.surface.SetInvalidateFunc(func() {
		fyne.Do(v.raster.Refresh)
	})
	return v
}

func (v *FilteredImageView) generate(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	if err := v.target.Resize(w, h); err != nil {
		v.logger.WithError(err).Warn("Failed to resize render target")
		return v.target.Image()
	}

	v.surface.Draw(geom.NewRect(0, 0, float64(w), float64(h)))
	return v.target.Image()
}

func (v *FilteredImageView) Surface() *render.Surface {
	return v.surface
}

func (v *FilteredImageView) SetFilter(f filters.Filter) {
	v.surface.SetFilter(f)
}

func (v *FilteredImageView) SetInputImage(img image.Image) {
	v.surface.SetInputImage(img)
}

func (v *FilteredImageView) SetContentMode(mode geom.ContentMode) {
	v.surface.SetContentMode(mode)
}

func (v *FilteredImageView) SetBackground(c color.Color) {
	v.surface.SetBackground(c)
}

func (v *FilteredImageView) GetContainer() fyne.CanvasObject {
	return v.raster
}

// Close releases the render target.
func (v *FilteredImageView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	_ = v.target.Close()
}
