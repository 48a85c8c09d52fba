package filters

import (
	"fmt"
	"image"
	"math"
	"sync"
)

// Base carries descriptor data and current values for a concrete filter.
// Engines embed it and implement OutputImage on top.
type Base struct {
	mu          sync.RWMutex
	name        string
	displayName string
	keys        []string
	attributes  map[string]Attribute
	values      map[string]float64
	input       image.Image
	version     uint64
}

// NewBase creates descriptor state with every scalar input at its default.
func NewBase(name, displayName string, inputs ...Input) *Base {
	b := &Base{
		name:        name,
		displayName: displayName,
		keys:        make([]string, 0, len(inputs)+1),
		attributes:  make(map[string]Attribute, len(inputs)),
		values:      make(map[string]float64, len(inputs)),
	}

	b.keys = append(b.keys, InputImageKey)
	for _, in := range inputs {
		b.keys = append(b.keys, in.Key)
		b.attributes[in.Key] = in.Attribute
		b.values[in.Key] = in.Attribute.Default
	}

	return b
}

func (b *Base) Name() string        { return b.name }
func (b *Base) DisplayName() string { return b.displayName }

func (b *Base) InputKeys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

func (b *Base) Attributes() map[string]Attribute {
	result := make(map[string]Attribute, len(b.attributes))
	for key, attr := range b.attributes {
		result[key] = attr
	}
	return result
}

// SetValue stores value for key. Values are not clamped to the slider range;
// NaN and infinities are rejected with ErrOutOfDomain and leave the current
// value in place.
func (b *Base) SetValue(key string, value float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.attributes[key]; !ok {
		return fmt.Errorf("%s: %w: %s", b.name, ErrUnknownInput, key)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: %w: %s=%g", b.name, ErrOutOfDomain, key, value)
	}
	if b.values[key] != value {
		b.values[key] = value
		b.version++
	}
	return nil
}

// Value returns the current value of key
func (b *Base) Value(key string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[key]
	return v, ok
}

func (b *Base) SetInputImage(img image.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.input != img {
		b.input = img
		b.version++
	}
}

// InputImage returns the bound image input, or nil.
func (b *Base) InputImage() image.Image {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.input
}

// Version changes every time a value or the input image changes.
func (b *Base) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Snapshot returns the input, values and version under one lock.
func (b *Base) Snapshot() (image.Image, map[string]float64, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	values := make(map[string]float64, len(b.values))
	for k, v := range b.values {
		values[k] = v
	}
	return b.input, values, b.version
}
