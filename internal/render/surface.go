// Live filter rendering: render state, redraw coalescing and the draw call
package render

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"filter-explorer/internal/filters"
	"filter-explorer/internal/geom"
	"filter-explorer/internal/metrics"
)

// Surface owns the render state for one filtered image view. Setters mark
// the surface dirty; the host draws it on its next refresh.
type Surface struct {
	mu         sync.Mutex
	filter     filters.Filter
	input      image.Image
	mode       geom.ContentMode
	background color.Color
	target     Target

	dirty      bool
	invalidate func()

	stats  *metrics.FrameStats
	logger *logrus.Entry
}

func NewSurface(target Target, logger *logrus.Entry) *Surface {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Surface{
		target:     target,
		mode:       geom.ScaleAspectFit,
		background: color.Black,
		stats:      &metrics.FrameStats{},
		logger:     logger,
	}
}

// SetInvalidateFunc installs the host hook called on every redraw request.
func (s *Surface) SetInvalidateFunc(fn func()) {
	s.mu.Lock()
	s.invalidate = fn
	s.mu.Unlock()
}

func (s *Surface) SetFilter(f filters.Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	s.SetNeedsDisplay()
}

func (s *Surface) SetInputImage(img image.Image) {
	s.mu.Lock()
	s.input = img
	s.mu.Unlock()
	s.SetNeedsDisplay()
}

func (s *Surface) SetContentMode(mode geom.ContentMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	s.SetNeedsDisplay()
}

func (s *Surface) SetBackground(c color.Color) {
	s.mu.Lock()
	s.background = c
	s.mu.Unlock()
	s.SetNeedsDisplay()
}

func (s *Surface) SetTarget(t Target) {
	s.mu.Lock()
	s.target = t
	s.mu.Unlock()
	s.SetNeedsDisplay()
}

func (s *Surface) Filter() filters.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Surface) InputImage() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Surface) ContentMode() geom.ContentMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Surface) Stats() *metrics.FrameStats {
	return s.stats
}

// SetNeedsDisplay requests a redraw on the next refresh. Requests made
// before that refresh collapse into a single draw.
func (s *Surface) SetNeedsDisplay() {
	s.mu.Lock()
	s.dirty = true
	invalidate := s.invalidate
	s.mu.Unlock()

	s.stats.RecordRequest()
	if invalidate != nil {
		invalidate()
	}
}

func (s *Surface) NeedsDisplay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// DisplayIfNeeded draws into viewport only when a redraw was requested and
// reports whether it consumed a request.
func (s *Surface) DisplayIfNeeded(viewport geom.Rect) bool {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	s.Draw(viewport)
	return true
}

// Draw renders the current state into viewport. It is a no-op when the
// filter, input image or target is missing, or when the filter produces no
// output for its current values.
func (s *Surface) Draw(viewport geom.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = false
	if s.target == nil || s.filter == nil || s.input == nil {
		return
	}

	start := time.Now()

	s.filter.SetInputImage(s.input)
	output, ok := s.filter.OutputImage()
	if !ok {
		s.stats.RecordSkipped()
		s.logger.WithField("filter", s.filter.Name()).Debug("Filter produced no output, frame skipped")
		return
	}

	s.target.Clear(s.background)

	inputBounds := geom.FromRectangle(s.input.Bounds())
	targetBounds := geom.BoundsForContentMode(s.mode, inputBounds, viewport)
	s.target.DrawImage(output, targetBounds, inputBounds)

	elapsed := time.Since(start)
	s.stats.RecordFrame(elapsed)
	s.logger.WithFields(logrus.Fields{
		"filter":   s.filter.Name(),
		"viewport": viewport.String(),
		"target":   targetBounds.String(),
		"duration": elapsed,
	}).Debug("Frame rendered")
}
