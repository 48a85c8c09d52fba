package filters

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a filter instance with every input at its default.
type Factory func() Filter

type registration struct {
	category string
	factory  Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registration)
)

// Register adds a filter factory under name. Registering a factory whose
// attributes do not validate is a programming error and panics.
func Register(name, category string, factory Factory) {
	if err := Validate(factory()); err != nil {
		panic(fmt.Sprintf("filters: register %s: %v", name, err))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = registration{category: category, factory: factory}
}

// ByName creates a fresh instance of the named filter.
func ByName(name string) (Filter, error) {
	registryMu.RLock()
	reg, exists := registry[name]
	registryMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}

	filter := reg.factory()
	if err := Validate(filter); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return filter, nil
}

// IsRegistered reports whether name has a factory
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, exists := registry[name]
	return exists
}

// Names returns every registered filter name, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories groups registered filter names by category. Names within a
// category are sorted.
func Categories() map[string][]string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make(map[string][]string)
	for name, reg := range registry {
		result[reg.category] = append(result[reg.category], name)
	}
	for _, names := range result {
		sort.Strings(names)
	}
	return result
}
