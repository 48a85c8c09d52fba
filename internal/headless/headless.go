// Offscreen rendering of a single filter frame
package headless

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"filter-explorer/internal/config"
	"filter-explorer/internal/filters"
	"filter-explorer/internal/geom"
	"filter-explorer/internal/io"
	"filter-explorer/internal/metrics"
	"filter-explorer/internal/params"
	"filter-explorer/internal/render"
)

// DefaultTimeout bounds how long Run waits for the first frame.
const DefaultTimeout = 30 * time.Second

var (
	ErrNoOutput = errors.New("filter produced no output")
	ErrNoFrame  = errors.New("no frame rendered")
)

// Result describes a finished render.
type Result struct {
	Frames  int64
	Applied []string
	Ignored []string
	Metrics map[string]string
}

// Run renders one frame of the configured filter into an offscreen gg
// context and writes it to cfg.Output. Values from cfg are forwarded to the
// filter unclamped, so an out-of-domain value yields ErrNoOutput.
func Run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Result, error) {
	log := logger.WithField("component", "headless")

	filter, err := filters.ByName(cfg.FilterName)
	if err != nil {
		return nil, err
	}

	values, err := cfg.ParseValues()
	if err != nil {
		return nil, err
	}

	loader := io.NewImageLoader(cfg.ResourceDir, logger.WithField("component", "io"))
	input, err := loader.Open(cfg.ImagePath, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	target := render.NewContextTarget(cfg.Width, cfg.Height)
	defer target.Close()

	surface := render.NewSurface(target, logger.WithField("component", "render"))
	surface.SetContentMode(cfg.Mode())
	surface.SetBackground(cfg.BackgroundColor())
	surface.SetFilter(filter)
	surface.SetInputImage(input)

	result := &Result{}
	known := make(map[string]bool)
	for _, p := range params.Derive(filter) {
		known[p.Key] = true
		v, ok := values[p.Key]
		if !ok {
			continue
		}
		p.CurrentValue = v
		surface.ParameterValueDidChange(p)
		result.Applied = append(result.Applied, p.Key)
	}
	for key := range values {
		if !known[key] {
			result.Ignored = append(result.Ignored, key)
		}
	}
	sort.Strings(result.Applied)
	sort.Strings(result.Ignored)

	if len(result.Ignored) > 0 {
		log.WithFields(logrus.Fields{
			"filter":  cfg.FilterName,
			"ignored": result.Ignored,
		}).Warn("Some values do not name a parameter of this filter")
	}

	viewport := geom.NewRect(0, 0, float64(cfg.Width), float64(cfg.Height))
	link, err := render.NewDisplayLink(surface, cfg.RefreshHz, func() geom.Rect { return viewport }, log)
	if err != nil {
		return nil, err
	}

	frameCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	link.OnFrame(cancel)

	if err := link.Run(frameCtx); err != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFrame, ctx.Err())
	}

	stats := surface.Stats().Snapshot()
	result.Frames = stats.Frames
	if stats.Frames == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.FilterName, ErrNoOutput)
	}

	if err := target.SavePNG(cfg.Output); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	fields := logrus.Fields{
		"output": cfg.Output,
		"frames": stats.Frames,
		"last":   stats.LastFrame,
	}
	if output, ok := filter.OutputImage(); ok {
		result.Metrics = metrics.Format(metrics.NewEvaluator().CalculateAll(input, output))
		for name, value := range result.Metrics {
			fields[name] = value
		}
	}
	log.WithFields(fields).Info("Frame rendered")

	return result, nil
}
