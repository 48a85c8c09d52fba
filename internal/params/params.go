// Adjustable scalar parameters derived from a filter's declared inputs
package params

import (
	"fmt"
	"math"

	"filter-explorer/internal/filters"
)

// displayNamePrefixLen is the length of the "input" prefix carried by every
// filter input key.
const displayNamePrefixLen = 5

// ScalarFilterParameter is one slider-adjustable input of a filter.
type ScalarFilterParameter struct {
	Name         string
	Key          string
	MinimumValue float64
	MaximumValue float64
	CurrentValue float64
}

// SetCurrentValue clamps v into [MinimumValue, MaximumValue], stores it and
// returns the stored value. NaN is ignored and the current value kept.
func (p *ScalarFilterParameter) SetCurrentValue(v float64) float64 {
	if math.IsNaN(v) {
		return p.CurrentValue
	}
	p.CurrentValue = min(max(v, p.MinimumValue), p.MaximumValue)
	return p.CurrentValue
}

func (p *ScalarFilterParameter) String() string {
	return fmt.Sprintf("%s=%g [%g, %g]", p.Key, p.CurrentValue, p.MinimumValue, p.MaximumValue)
}

// DisplayName strips the fixed "input" prefix from key. Keys no longer than
// the prefix are returned unchanged.
func DisplayName(key string) string {
	if len(key) <= displayNamePrefixLen {
		return key
	}
	return key[displayNamePrefixLen:]
}

// Derive builds one parameter per scalar input of d, in d's input order,
// each starting at its declared default. A scalar key without an attribute
// record is a programming error and panics; descriptors obtained through
// filters.ByName have already been validated.
func Derive(d filters.Descriptor) []*ScalarFilterParameter {
	attributes := d.Attributes()
	keys := d.InputKeys()
	result := make([]*ScalarFilterParameter, 0, len(keys))

	for _, key := range keys {
		if key == filters.InputImageKey {
			continue
		}

		attr, ok := attributes[key]
		if !ok {
			panic(fmt.Sprintf("params: %s has no attributes for input %s", d.Name(), key))
		}

		result = append(result, &ScalarFilterParameter{
			Name:         DisplayName(key),
			Key:          key,
			MinimumValue: attr.SliderMin,
			MaximumValue: attr.SliderMax,
			CurrentValue: attr.Default,
		})
	}

	return result
}
