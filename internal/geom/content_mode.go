package geom

import (
	"fmt"
	"strings"
)

// ContentMode selects how a source rectangle is mapped into a destination.
type ContentMode int

const (
	// ScaleNone passes the source extent through unchanged.
	ScaleNone ContentMode = iota
	// ScaleAspectFit letterboxes the source inside the destination.
	ScaleAspectFit
	// ScaleAspectFill covers the destination, overflowing on one axis.
	ScaleAspectFill
)

func (m ContentMode) String() string {
	switch m {
	case ScaleAspectFit:
		return "fit"
	case ScaleAspectFill:
		return "fill"
	default:
		return "none"
	}
}

// ParseContentMode accepts "fit", "fill" or "none".
func ParseContentMode(s string) (ContentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fit":
		return ScaleAspectFit, nil
	case "fill":
		return ScaleAspectFill, nil
	case "none", "":
		return ScaleNone, nil
	}
	return ScaleNone, fmt.Errorf("unknown content mode: %q", s)
}

// AspectFit scales from into to preserving aspect ratio without cropping,
// centered on the axis that has slack.
func AspectFit(from, to Rect) Rect {
	if from.Empty() || to.Empty() {
		return Rect{X: to.X, Y: to.Y}
	}

	fromAspect := from.AspectRatio()
	toAspect := to.AspectRatio()

	fit := to
	if fromAspect > toAspect {
		fit.H = to.W / fromAspect
		fit.Y += (to.H - fit.H) * 0.5
	} else {
		fit.W = to.H * fromAspect
		fit.X += (to.W - fit.W) * 0.5
	}

	return fit.Integral()
}

// AspectFill scales from to cover to preserving aspect ratio. The result
// overflows to on one axis and is expected to be clipped by the viewport.
func AspectFill(from, to Rect) Rect {
	if from.Empty() || to.Empty() {
		return Rect{X: to.X, Y: to.Y}
	}

	fromAspect := from.AspectRatio()
	toAspect := to.AspectRatio()

	fill := to
	if fromAspect > toAspect {
		fill.W = to.H * fromAspect
		fill.X += (to.W - fill.W) * 0.5
	} else {
		fill.H = to.W / fromAspect
		fill.Y += (to.H - fill.H) * 0.5
	}

	return fill.Integral()
}

// BoundsForContentMode maps from into to according to mode.
func BoundsForContentMode(mode ContentMode, from, to Rect) Rect {
	switch mode {
	case ScaleAspectFill:
		return AspectFill(from, to)
	case ScaleAspectFit:
		return AspectFit(from, to)
	default:
		return from
	}
}
