package metrics

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFrameStats(t *testing.T) {
	var fs FrameStats
	fs.RecordRequest()
	fs.RecordRequest()
	fs.RecordFrame(3 * time.Millisecond)
	fs.RecordSkipped()

	snap := fs.Snapshot()
	assert.Equal(t, Snapshot{Requests: 2, Frames: 1, Skipped: 1, LastFrame: 3 * time.Millisecond}, snap)
	assert.Contains(t, snap.String(), "frames=1")

	fs.Reset()
	assert.Equal(t, Snapshot{}, fs.Snapshot())
}

func TestMSE(t *testing.T) {
	black := uniform(4, 4, color.RGBA{0, 0, 0, 255})
	grey := uniform(4, 4, color.RGBA{10, 10, 10, 255})

	mse, err := NewMSE().Calculate(black, grey)
	require.NoError(t, err)
	assert.InDelta(t, 100, mse, 1e-9)

	_, err = NewMSE().Calculate(black, uniform(2, 2, color.Black))
	require.Error(t, err)
}

func TestPSNR(t *testing.T) {
	a := uniform(3, 3, color.RGBA{40, 80, 120, 255})

	v, err := NewPSNR().Calculate(a, a)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	b := uniform(3, 3, color.RGBA{50, 90, 130, 255})
	v, err = NewPSNR().Calculate(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 10*math.Log10(255*255/100.0), v, 1e-9)
}

func TestEvaluator(t *testing.T) {
	e := NewEvaluator()
	assert.Equal(t, []string{"mse", "psnr"}, e.Names())

	a := uniform(2, 2, color.White)
	results := e.CalculateAll(a, a)
	assert.Equal(t, 0.0, results["mse"])

	_, err := e.Calculate("ssim", a, a)
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	formatted := Format(map[string]float64{"mse": 1.5, "psnr": math.Inf(1)})
	assert.Equal(t, map[string]string{"mse": "1.500", "psnr": "+Inf"}, formatted)
}
