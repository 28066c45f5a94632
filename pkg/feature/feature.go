// Package feature keeps switchable features with their own dotted
// configuration.
package feature

import (
	"errors"
	"sort"
	"sync"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

var (
	ErrInvalidID  = errors.New("feature: id must be a non-empty string")
	ErrNilFeature = errors.New("feature: nil feature")
)

// Feature is a named switch carrying configuration addressed by dotted
// paths. Features start disabled.
type Feature struct {
	mu      sync.RWMutex
	id      string
	enabled bool
	config  *collection.Collection
}

// New creates a feature. Each config entry is written with Set, so keys may
// be dotted paths.
func New(id string, config map[string]any) (*Feature, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	f := &Feature{id: id, config: collection.New()}

	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f.Set(k, config[k])
	}
	return f, nil
}

func (f *Feature) ID() string {
	return f.id
}

func (f *Feature) Enable() *Feature {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = true
	return f
}

func (f *Feature) Disable() *Feature {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = false
	return f
}

func (f *Feature) Enabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.enabled
}

// Set writes a configuration value. Go maps and slices are converted to
// collection maps.
func (f *Feature) Set(path string, value any) *Feature {
	switch value.(type) {
	case map[string]any, []any:
		value = collection.FromNative(value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.config.SetPath(path, value)
	return f
}

func (f *Feature) Get(path string) any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.config.GetPath(path)
}

func (f *Feature) Has(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.config.HasKey(path)
}

// All returns a snapshot of the configuration.
func (f *Feature) All() *collection.Map {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.config.GetAll()
}
