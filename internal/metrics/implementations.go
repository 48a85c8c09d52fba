package metrics

import (
	"fmt"
	"image"
	"math"
)

// MSE is the mean squared error over RGB channels on a 0-255 scale.
type MSE struct{}

func NewMSE() *MSE { return &MSE{} }

func (m *MSE) Calculate(original, processed image.Image) (float64, error) {
	return meanSquaredError(original, processed)
}

func (m *MSE) GetName() string              { return "Mean Squared Error" }
func (m *MSE) GetRange() (float64, float64) { return 0, 255 * 255 }
func (m *MSE) IsHigherBetter() bool         { return false }

// PSNR is the peak signal-to-noise ratio in dB. Identical images report +Inf.
type PSNR struct{}

func NewPSNR() *PSNR { return &PSNR{} }

func (p *PSNR) Calculate(original, processed image.Image) (float64, error) {
	mse, err := meanSquaredError(original, processed)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}

func (p *PSNR) GetName() string              { return "Peak Signal-to-Noise Ratio" }
func (p *PSNR) GetRange() (float64, float64) { return 0, math.Inf(1) }
func (p *PSNR) IsHigherBetter() bool         { return true }

func meanSquaredError(a, b image.Image) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, fmt.Errorf("image sizes differ: %v vs %v", ab.Size(), bb.Size())
	}
	if ab.Empty() {
		return 0, fmt.Errorf("empty image")
	}

	var sum float64
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			r2, g2, b2, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			sum += sq(r1, r2) + sq(g1, g2) + sq(b1, b2)
		}
	}

	return sum / float64(ab.Dx()*ab.Dy()*3), nil
}

// sq returns the squared difference of two 16-bit channels on a 0-255 scale.
func sq(a, b uint32) float64 {
	d := (float64(a) - float64(b)) / 257
	return d * d
}
