package env

import (
	"sync"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

// Default environment keys, in detection order.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Manager keeps environments in insertion order. It is safe for concurrent
// use.
type Manager struct {
	mu    sync.RWMutex
	envs  *collection.Collection
	probe Probe
}

// NewManager returns a manager holding the development, staging and
// production environments. A nil probe answers with empty values.
func NewManager(probe Probe) *Manager {
	if probe == nil {
		probe = StaticProbe{}
	}
	m := &Manager{
		envs:  collection.New().DisableDottedNotation(),
		probe: probe,
	}
	for _, key := range []string{Development, Staging, Production} {
		m.Add(key)
	}
	return m
}

// Add registers a new environment. Existing keys and empty keys are left
// alone.
func (m *Manager) Add(key string) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(key)
	return m
}

func (m *Manager) add(key string) {
	if key == "" || m.envs.HasKey(key) {
		return
	}
	e, _ := New(key)
	m.envs.SetPath(key, e)
}

// Replace registers a fresh environment under key, dropping any hosts the
// previous one had.
func (m *Manager) Replace(key string) *Manager {
	e, err := New(key)
	if err != nil {
		return m
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.envs.SetPath(key, e)
	return m
}

func (m *Manager) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.envs.HasKey(key)
}

// Get returns the environment stored under key, or nil.
func (m *Manager) Get(key string) *Env {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, _ := m.envs.GetPath(key).(*Env)
	return e
}

func (m *Manager) Remove(key string) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.envs.DeletePath(key)
	return m
}

// Keys returns the environment keys in insertion order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for k := range m.envs.All() {
		out = append(out, k.String())
	}
	return out
}

// Is reports whether key is the current environment.
func (m *Manager) Is(key string) bool {
	return key != "" && key == m.CurrentKey()
}

// Current returns the first environment that matches the probe, falling
// back to development. A removed development environment is added back.
func (m *Manager) Current() *Env {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.envs.All() {
		if e, ok := v.(*Env); ok && e.IsCurrent(m.probe) {
			return e
		}
	}
	m.add(Development)
	e, _ := m.envs.GetPath(Development).(*Env)
	return e
}

func (m *Manager) CurrentKey() string {
	return m.Current().Key()
}
