package filters

import (
	"errors"
	"image"

	"github.com/disintegration/gift"
)

// ErrOutOfDomain is returned by a BuildFunc when the current values cannot
// produce an image.
var ErrOutOfDomain = errors.New("value outside filter domain")

// BuildFunc turns current values into a gift filter chain.
type BuildFunc func(values map[string]float64) ([]gift.Filter, error)

// GiftFilter evaluates a gift filter chain built from the current values.
// The last output is cached until a value or the input image changes.
type GiftFilter struct {
	*Base
	build BuildFunc
	cache *OutputCache
}

func NewGiftFilter(base *Base, build BuildFunc) *GiftFilter {
	return &GiftFilter{Base: base, build: build, cache: NewOutputCache(nil)}
}

func (f *GiftFilter) OutputImage() (image.Image, bool) {
	input, values, version := f.Snapshot()
	if input == nil {
		return nil, false
	}

	return f.cache.Get(f.Name(), version, func() (image.Image, error) {
		chain, err := f.build(values)
		if err != nil {
			return nil, err
		}
		return drawChain(chain, input), nil
	})
}

// drawChain applies chain to src. The result shares src's coordinate space.
func drawChain(chain []gift.Filter, src image.Image) image.Image {
	g := gift.New(chain...)
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	dst.Rect = dst.Rect.Add(src.Bounds().Min)
	return dst
}
