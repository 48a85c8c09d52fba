// Rectangle math shared by the render surface and the layout templates
package geom

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from origin and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromRectangle converts an integer image rectangle
func FromRectangle(r image.Rectangle) Rect {
	return Rect{
		X: float64(r.Min.X),
		Y: float64(r.Min.Y),
		W: float64(r.Dx()),
		H: float64(r.Dy()),
	}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// AspectRatio returns width divided by height
func (r Rect) AspectRatio() float64 {
	return r.W / r.H
}

// Integral returns the smallest rectangle with integer edges that contains r.
// Minimum edges round down, maximum edges round up.
func (r Rect) Integral() Rect {
	minX := math.Floor(r.MinX())
	minY := math.Floor(r.MinY())
	maxX := math.Ceil(r.MaxX())
	maxY := math.Ceil(r.MaxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Rectangle converts to an image rectangle after making r integral.
func (r Rect) Rectangle() image.Rectangle {
	i := r.Integral()
	return image.Rect(int(i.MinX()), int(i.MinY()), int(i.MaxX()), int(i.MaxY()))
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
