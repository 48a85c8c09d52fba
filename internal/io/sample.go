package io

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// SampleImageName is the name the GUI uses when no image is configured.
const SampleImageName = "sample"

// SampleImage draws a colour test card: a vertical gradient, a grid and a
// few primary discs. Useful for judging blur, sharpening and colour filters.
func SampleImage(width, height int) image.Image {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	w, h := float64(width), float64(height)

	for y := 0; y < height; y++ {
		t := float64(y) / math.Max(1, h-1)
		dc.SetRGB(0.15+0.6*t, 0.35, 0.75-0.5*t)
		dc.DrawRectangle(0, float64(y), w, 1)
		_ = dc.Fill()
	}

	dc.SetRGBA(1, 1, 1, 0.35)
	dc.SetLineWidth(1)
	step := math.Max(8, math.Min(w, h)/12)
	for x := step; x < w; x += step {
		dc.DrawLine(x, 0, x, h)
	}
	for y := step; y < h; y += step {
		dc.DrawLine(0, y, w, y)
	}
	_ = dc.Stroke()

	r := math.Min(w, h) / 6
	discs := []struct {
		x, y    float64
		r, g, b float64
	}{
		{w * 0.3, h * 0.4, 0.9, 0.1, 0.1},
		{w * 0.5, h * 0.6, 0.1, 0.8, 0.2},
		{w * 0.7, h * 0.4, 0.1, 0.2, 0.9},
	}
	for _, d := range discs {
		dc.SetRGB(d.r, d.g, d.b)
		dc.DrawCircle(d.x, d.y, r)
		_ = dc.Fill()
	}

	_ = dc.FlushGPU()
	return dc.Image()
}
