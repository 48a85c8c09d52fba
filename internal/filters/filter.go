// Filter descriptors and the image filters behind them
package filters

import (
	"errors"
	"image"
)

// InputImageKey is the input key that carries the source image.
const InputImageKey = "inputImage"

var (
	ErrUnknownFilter     = errors.New("unknown filter")
	ErrUnknownInput      = errors.New("unknown filter input")
	ErrInvalidAttributes = errors.New("invalid filter attributes")
)

// Attribute describes one scalar input of a filter
type Attribute struct {
	DisplayName string  `json:"display_name"`
	SliderMin   float64 `json:"slider_min"`
	SliderMax   float64 `json:"slider_max"`
	Default     float64 `json:"default"`
}

// Descriptor exposes what a filter accepts. InputKeys is ordered and
// includes InputImageKey; Attributes holds one record per scalar key.
type Descriptor interface {
	Name() string
	DisplayName() string
	InputKeys() []string
	Attributes() map[string]Attribute
}

// Filter is a named, parameterized image transformation.
type Filter interface {
	Descriptor

	// SetValue assigns a scalar input.
	SetValue(key string, value float64) error
	// SetInputImage binds the image input.
	SetInputImage(img image.Image)
	// OutputImage evaluates the filter. It reports false when there is no
	// input image or the current values are outside the filter's domain.
	OutputImage() (image.Image, bool)
}

// Input pairs a scalar key with its attribute record, in declaration order.
type Input struct {
	Key       string
	Attribute Attribute
}
