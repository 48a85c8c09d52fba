package render

import (
	"github.com/sirupsen/logrus"

	"filter-explorer/internal/params"
)

// AdjustmentDelegate receives parameter changes from the adjustment panel.
type AdjustmentDelegate interface {
	ParameterValueDidChange(p *params.ScalarFilterParameter)
}

var _ AdjustmentDelegate = (*Surface)(nil)

// ParameterValueDidChange pushes p's current value into the filter and
// requests a redraw. A value the filter rejects is dropped; the draw-time
// no-output guard covers values the filter cannot render.
func (s *Surface) ParameterValueDidChange(p *params.ScalarFilterParameter) {
	if f := s.Filter(); f != nil {
		if err := f.SetValue(p.Key, p.CurrentValue); err != nil {
			s.logger.WithFields(logrus.Fields{
				"key":   p.Key,
				"value": p.CurrentValue,
				"error": err,
			}).Debug("Filter rejected parameter value")
		}
	}
	s.SetNeedsDisplay()
}
