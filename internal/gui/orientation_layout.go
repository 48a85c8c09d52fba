package gui

import (
	"fyne.io/fyne/v2"

	"filter-explorer/internal/geom"
	"filter-explorer/internal/layout"
)

// orientationLayout arranges an image view and an adjustment panel side by
// side in wide containers and stacked in tall ones.
type orientationLayout struct {
	template layout.Template
	insets   func() layout.Insets
}

func newOrientationLayout(insets func() layout.Insets) *orientationLayout {
	if insets == nil {
		insets = func() layout.Insets { return layout.Insets{} }
	}
	return &orientationLayout{template: layout.DefaultTemplate, insets: insets}
}

// Layout expects exactly two objects: the image view and the panel.
func (l *orientationLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}

	view := geom.NewRect(0, 0, float64(size.Width), float64(size.Height))
	frames := l.template.Compute(view, l.insets())

	place(objects[0], frames.Image)
	place(objects[1], frames.Panel)
}

func (l *orientationLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return fyne.NewSize(minSize.Width, minSize.Height+float32(l.template.PanelInset))
}

func place(o fyne.CanvasObject, r geom.Rect) {
	o.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	o.Resize(fyne.NewSize(float32(max(r.W, 0)), float32(max(r.H, 0))))
}

// safeAreaInsets reads the interactive area of c as top and bottom insets.
func safeAreaInsets(c fyne.Canvas) layout.Insets {
	if c == nil {
		return layout.Insets{}
	}
	pos, size := c.InteractiveArea()
	total := c.Size()
	return layout.Insets{
		Top:    float64(pos.Y),
		Bottom: float64(max(total.Height-pos.Y-size.Height, 0)),
	}
}
