package render

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"filter-explorer/internal/geom"
)

// DisplayLink drives a Surface at a fixed refresh rate, drawing at most once
// per tick and only when a redraw was requested.
type DisplayLink struct {
	surface  *Surface
	interval time.Duration
	viewport func() geom.Rect
	onFrame  func()
	logger   *logrus.Entry
}

// NewDisplayLink creates a link refreshing hz times per second. viewport is
// queried on every tick.
func NewDisplayLink(surface *Surface, hz int, viewport func() geom.Rect, logger *logrus.Entry) (*DisplayLink, error) {
	if hz <= 0 {
		return nil, fmt.Errorf("invalid refresh rate: %d", hz)
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &DisplayLink{
		surface:  surface,
		interval: time.Second / time.Duration(hz),
		viewport: viewport,
		logger:   logger,
	}, nil
}

// OnFrame registers a callback run after every tick that consumed a request.
func (d *DisplayLink) OnFrame(fn func()) {
	d.onFrame = fn
}

func (d *DisplayLink) Interval() time.Duration {
	return d.interval
}

// Run ticks until ctx is done and returns ctx.Err().
func (d *DisplayLink) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.WithField("interval", d.interval).Debug("Display link started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("Display link stopped")
			return ctx.Err()
		case <-ticker.C:
			if d.surface.DisplayIfNeeded(d.viewport()) && d.onFrame != nil {
				d.onFrame()
			}
		}
	}
}
