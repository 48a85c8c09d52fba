package filters

import (
	"fmt"
	"math"

	"github.com/disintegration/gift"
)

const (
	CategoryBlur       = "Blur"
	CategorySharpen    = "Sharpen"
	CategoryColor      = "Color Adjustment"
	CategoryEffect     = "Color Effect"
	CategoryStylize    = "Stylize"
	CategoryProcessing = "Processing"
)

func init() {
	Register("CIGaussianBlur", CategoryBlur, NewGaussianBlur)
	Register("CIUnsharpMask", CategorySharpen, NewUnsharpMask)
	Register("CISharpenLuminance", CategorySharpen, NewSharpenLuminance)
	Register("CIColorControls", CategoryColor, NewColorControls)
	Register("CIGammaAdjust", CategoryColor, NewGammaAdjust)
	Register("CIHueAdjust", CategoryColor, NewHueAdjust)
	Register("CIExposureAdjust", CategoryColor, NewExposureAdjust)
	Register("CISepiaTone", CategoryEffect, NewSepiaTone)
	Register("CIPhotoEffectMono", CategoryEffect, NewPhotoEffectMono)
	Register("CIPixellate", CategoryStylize, NewPixellate)
}

func attr(name string, min, max, def float64) Attribute {
	return Attribute{DisplayName: name, SliderMin: min, SliderMax: max, Default: def}
}

func outOfDomain(key string, v float64) error {
	return fmt.Errorf("%w: %s=%g", ErrOutOfDomain, key, v)
}

func NewGaussianBlur() Filter {
	base := NewBase("CIGaussianBlur", "Gaussian Blur",
		Input{Key: "inputRadius", Attribute: attr("Radius", 0, 100, 10)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		radius := v["inputRadius"]
		if radius < 0 {
			return nil, outOfDomain("inputRadius", radius)
		}
		return []gift.Filter{gift.GaussianBlur(float32(radius))}, nil
	})
}

func NewUnsharpMask() Filter {
	base := NewBase("CIUnsharpMask", "Unsharp Mask",
		Input{Key: "inputRadius", Attribute: attr("Radius", 0, 100, 2.5)},
		Input{Key: "inputIntensity", Attribute: attr("Intensity", 0, 1, 0.5)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		radius, intensity := v["inputRadius"], v["inputIntensity"]
		if radius < 0 {
			return nil, outOfDomain("inputRadius", radius)
		}
		if intensity < 0 {
			return nil, outOfDomain("inputIntensity", intensity)
		}
		return []gift.Filter{gift.UnsharpMask(float32(radius), float32(intensity), 0)}, nil
	})
}

func NewSharpenLuminance() Filter {
	base := NewBase("CISharpenLuminance", "Sharpen Luminance",
		Input{Key: "inputSharpness", Attribute: attr("Sharpness", 0, 2, 0.4)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		sharpness := v["inputSharpness"]
		if sharpness < 0 {
			return nil, outOfDomain("inputSharpness", sharpness)
		}
		return []gift.Filter{gift.UnsharpMask(1, float32(sharpness), 0)}, nil
	})
}

// NewColorControls maps CoreImage-style factors (1 = unchanged) onto gift
// percentages (0 = unchanged).
func NewColorControls() Filter {
	base := NewBase("CIColorControls", "Color Controls",
		Input{Key: "inputSaturation", Attribute: attr("Saturation", 0, 2, 1)},
		Input{Key: "inputBrightness", Attribute: attr("Brightness", -1, 1, 0)},
		Input{Key: "inputContrast", Attribute: attr("Contrast", 0.25, 4, 1)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		saturation := v["inputSaturation"]
		if saturation < 0 {
			return nil, outOfDomain("inputSaturation", saturation)
		}
		contrast := v["inputContrast"]
		if contrast <= 0 {
			return nil, outOfDomain("inputContrast", contrast)
		}
		return []gift.Filter{
			gift.Saturation(float32((saturation - 1) * 100)),
			gift.Brightness(float32(v["inputBrightness"] * 100)),
			gift.Contrast(float32((contrast - 1) * 100)),
		}, nil
	})
}

func NewGammaAdjust() Filter {
	base := NewBase("CIGammaAdjust", "Gamma Adjust",
		Input{Key: "inputPower", Attribute: attr("Power", 0.25, 4, 0.75)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		power := v["inputPower"]
		if power <= 0 {
			return nil, outOfDomain("inputPower", power)
		}
		return []gift.Filter{gift.Gamma(float32(power))}, nil
	})
}

// NewHueAdjust takes its angle in radians.
func NewHueAdjust() Filter {
	base := NewBase("CIHueAdjust", "Hue Adjust",
		Input{Key: "inputAngle", Attribute: attr("Angle", -math.Pi, math.Pi, 0)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		degrees := v["inputAngle"] * 180 / math.Pi
		return []gift.Filter{gift.Hue(float32(math.Remainder(degrees, 360)))}, nil
	})
}

func NewExposureAdjust() Filter {
	base := NewBase("CIExposureAdjust", "Exposure Adjust",
		Input{Key: "inputEV", Attribute: attr("EV", -10, 10, 0.5)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		gain := float32(math.Exp2(v["inputEV"]))
		return []gift.Filter{gift.ColorFunc(func(r, g, b, a float32) (float32, float32, float32, float32) {
			return r * gain, g * gain, b * gain, a
		})}, nil
	})
}

func NewSepiaTone() Filter {
	base := NewBase("CISepiaTone", "Sepia Tone",
		Input{Key: "inputIntensity", Attribute: attr("Intensity", 0, 1, 1)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		intensity := v["inputIntensity"]
		if intensity < 0 {
			return nil, outOfDomain("inputIntensity", intensity)
		}
		return []gift.Filter{gift.Sepia(float32(intensity * 100))}, nil
	})
}

// NewPhotoEffectMono has no scalar inputs.
func NewPhotoEffectMono() Filter {
	base := NewBase("CIPhotoEffectMono", "Photo Effect Mono")
	return NewGiftFilter(base, func(map[string]float64) ([]gift.Filter, error) {
		return []gift.Filter{gift.Grayscale()}, nil
	})
}

func NewPixellate() Filter {
	base := NewBase("CIPixellate", "Pixellate",
		Input{Key: "inputScale", Attribute: attr("Scale", 1, 100, 8)},
	)
	return NewGiftFilter(base, func(v map[string]float64) ([]gift.Filter, error) {
		scale := v["inputScale"]
		if scale < 1 {
			return nil, outOfDomain("inputScale", scale)
		}
		return []gift.Filter{gift.Pixelate(int(math.Round(scale)))}, nil
	})
}
