package filters

import (
	"fmt"
	"math"
)

// Validate checks that every scalar input key has a well-formed attribute
// record: finite bounds, SliderMin <= Default <= SliderMax.
func Validate(d Descriptor) error {
	attributes := d.Attributes()
	seen := make(map[string]bool)

	for _, key := range d.InputKeys() {
		if seen[key] {
			return fmt.Errorf("%w: %s: duplicate input %s", ErrInvalidAttributes, d.Name(), key)
		}
		seen[key] = true

		if key == InputImageKey {
			continue
		}

		attr, ok := attributes[key]
		if !ok {
			return fmt.Errorf("%w: %s: no attributes for %s", ErrInvalidAttributes, d.Name(), key)
		}

		for field, v := range map[string]float64{
			"slider_min": attr.SliderMin,
			"slider_max": attr.SliderMax,
			"default":    attr.Default,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s.%s: %s is not finite", ErrInvalidAttributes, d.Name(), key, field)
			}
		}

		if attr.SliderMin > attr.Default || attr.Default > attr.SliderMax {
			return fmt.Errorf("%w: %s.%s: default %g outside [%g, %g]",
				ErrInvalidAttributes, d.Name(), key, attr.Default, attr.SliderMin, attr.SliderMax)
		}
	}

	return nil
}
