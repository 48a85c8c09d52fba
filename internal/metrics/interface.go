package metrics

import (
	"fmt"
	"image"
	"sort"
)

// Metric compares an original image with its filtered counterpart
type Metric interface {
	// Calculate computes the metric value
	Calculate(original, processed image.Image) (float64, error)

	GetName() string

	// GetRange returns the value range (min, max)
	GetRange() (float64, float64)

	// IsHigherBetter returns true if higher values mean the images are closer
	IsHigherBetter() bool
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates an evaluator with the default metrics registered
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	return e
}

func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Names returns registered metric names, sorted
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.metrics))
	for name := range e.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Evaluator) Calculate(name string, original, processed image.Image) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}
	return metric.Calculate(original, processed)
}

// CalculateAll skips metrics that fail
func (e *Evaluator) CalculateAll(original, processed image.Image) map[string]float64 {
	results := make(map[string]float64)
	for name, metric := range e.metrics {
		if value, err := metric.Calculate(original, processed); err == nil {
			results[name] = value
		}
	}
	return results
}

// Format renders each value with three decimals so that an infinite PSNR
// survives JSON log output.
func Format(results map[string]float64) map[string]string {
	formatted := make(map[string]string, len(results))
	for name, value := range results {
		formatted[name] = fmt.Sprintf("%.3f", value)
	}
	return formatted
}
