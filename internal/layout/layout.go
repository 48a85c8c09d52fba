// Orientation-driven placement of the image view and the adjustment panel
package layout

import "filter-explorer/internal/geom"

// Orientation of the containing view.
type Orientation int

const (
	Tall Orientation = iota
	Wide
)

func (o Orientation) String() string {
	if o == Wide {
		return "wide"
	}
	return "tall"
}

// OrientationFor returns Wide when view is wider than it is tall.
func OrientationFor(view geom.Rect) Orientation {
	if view.W > view.H {
		return Wide
	}
	return Tall
}

// Insets are the safe-area margins of the containing view.
type Insets struct {
	Top    float64
	Bottom float64
}

// Template holds the chrome allowances of both arrangements. In the wide
// arrangement the image gives up ImageInset of height; in the tall one the
// panel gives up PanelInset.
type Template struct {
	ImageInset float64
	PanelInset float64
}

// DefaultTemplate reserves room for a navigation bar and a tab bar.
var DefaultTemplate = Template{ImageInset: 66, PanelInset: 88}

// Frames are the computed rectangles for one viewport.
type Frames struct {
	Orientation Orientation
	Image       geom.Rect
	Panel       geom.Rect
}

// Compute places the image view and the adjustment panel inside view.
func (t Template) Compute(view geom.Rect, insets Insets) Frames {
	o := OrientationFor(view)
	top := view.Y + insets.Top

	if o == Wide {
		half := view.W * 0.5
		return Frames{
			Orientation: o,
			Image:       geom.NewRect(view.X, top, half, view.H-t.ImageInset),
			Panel:       geom.NewRect(view.MaxX()-half, top, half, view.H),
		}
	}

	panelHeight := view.H*0.5 - t.PanelInset
	return Frames{
		Orientation: o,
		Image:       geom.NewRect(view.X, top, view.W, view.H*0.5),
		Panel:       geom.NewRect(view.X, view.MaxY()-insets.Bottom-panelHeight, view.W, panelHeight),
	}
}

// Compute uses DefaultTemplate.
func Compute(view geom.Rect, insets Insets) Frames {
	return DefaultTemplate.Compute(view, insets)
}
