package feature

import (
	"sync"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

// Manager holds features by id, in registration order. It is safe for
// concurrent use.
type Manager struct {
	mu       sync.RWMutex
	features *collection.Collection
}

func NewManager() *Manager {
	return &Manager{features: collection.New().DisableDottedNotation()}
}

// Add registers f, replacing any feature with the same id.
func (m *Manager) Add(f *Feature) error {
	if f == nil {
		return ErrNilFeature
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.features.SetPath(f.ID(), f)
	return nil
}

// Define creates a feature from id and config, registers it and returns it.
func (m *Manager) Define(id string, config map[string]any) (*Feature, error) {
	f, err := New(id, config)
	if err != nil {
		return nil, err
	}
	if err := m.Add(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Get returns the feature registered under id, or nil.
func (m *Manager) Get(id string) *Feature {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, _ := m.features.GetPath(id).(*Feature)
	return f
}

func (m *Manager) Exists(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.features.HasKey(id)
}

// Enabled reports whether id is registered and enabled.
func (m *Manager) Enabled(id string) bool {
	f := m.Get(id)
	return f != nil && f.Enabled()
}

// All returns the registered features in registration order.
func (m *Manager) All() []*Feature {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Feature
	for _, v := range m.features.All() {
		if f, ok := v.(*Feature); ok {
			out = append(out, f)
		}
	}
	return out
}

func (m *Manager) Clear() *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.features.Clear()
	return m
}
