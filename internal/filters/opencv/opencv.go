// OpenCV-backed filters registered into the filter catalog
package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"filter-explorer/internal/filters"
)

const Category = "OpenCV"

// ApplyFunc runs an OpenCV operation on a BGR Mat using the current values.
type ApplyFunc func(input gocv.Mat, values map[string]float64) (gocv.Mat, error)

// Filter adapts an ApplyFunc to filters.Filter. Conversions between Go
// images and Mats happen once per evaluation and the result is cached.
type Filter struct {
	*filters.Base
	apply ApplyFunc
	cache *filters.OutputCache
}

func NewFilter(base *filters.Base, apply ApplyFunc) *Filter {
	return &Filter{Base: base, apply: apply, cache: filters.NewOutputCache(nil)}
}

func (f *Filter) OutputImage() (image.Image, bool) {
	input, values, version := f.Snapshot()
	if input == nil {
		return nil, false
	}

	return f.cache.Get(f.Name(), version, func() (image.Image, error) {
		return f.evaluate(input, values)
	})
}

func (f *Filter) evaluate(input image.Image, values map[string]float64) (image.Image, error) {
	mat, err := gocv.ImageToMatRGB(input)
	if err != nil {
		return nil, fmt.Errorf("convert input: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("input image is empty")
	}

	result, err := f.apply(mat, values)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	img, err := result.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert output: %w", err)
	}
	return img, nil
}

// Register adds the OpenCV filters to the catalog.
func Register() {
	filters.Register("CVBilateralFilter", Category, NewBilateralFilter)
	filters.Register("CVMedianBlur", Category, NewMedianBlur)
	filters.Register("CVCannyEdges", Category, NewCannyEdges)
}
