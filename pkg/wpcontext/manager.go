// Package wpcontext classifies the current WordPress request into a context
// key such as "single/post" or "archive/date/year" by running an ordered
// list of rules.
package wpcontext

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/bebop/internal/logging"
	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

// DefaultID is the id of the built-in rule.
const DefaultID = "default"

// Manager holds the rule containers and the current context key. It is safe
// for concurrent use.
type Manager struct {
	mu         sync.RWMutex
	containers *collection.Collection
	current    string
	backups    []string
	logger     *logging.Logger
}

// Option configures a Manager.
type Option func(*Manager)

func WithLogger(l *logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a manager with DefaultRule installed under DefaultID.
func New(opts ...Option) *Manager {
	m := &Manager{
		containers: collection.New().DisableDottedNotation(),
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.containers.Push(&Container{id: DefaultID, rule: DefaultRule}, "")
	return m
}

// Add registers rule ahead of every existing container.
func (m *Manager) Add(id string, rule Rule) error {
	return m.Prepend(id, rule)
}

func (m *Manager) Prepend(id string, rule Rule) error {
	c, err := NewContainer(id, rule)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.containers.Unshift(c, "")
	return nil
}

func (m *Manager) Append(id string, rule Rule) error {
	c, err := NewContainer(id, rule)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.containers.Push(c, "")
	return nil
}

// Get returns the first container registered under id, or nil.
func (m *Manager) Get(id string) *Container {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.containers.All() {
		if c, ok := v.(*Container); ok && c.id == id {
			return c
		}
	}
	return nil
}

// Containers returns the registered containers in evaluation order.
func (m *Manager) Containers() []*Container {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Container
	for _, v := range m.containers.All() {
		if c, ok := v.(*Container); ok {
			out = append(out, c)
		}
	}
	return out
}

// DefineCurrent runs the containers in order and stores the first non-empty
// key as the current context. The current context is left unchanged when no
// rule applies.
func (m *Manager) DefineCurrent(ctx context.Context, q Query) string {
	for _, c := range m.Containers() {
		key := c.Run(q)
		if key == "" {
			continue
		}
		m.mu.Lock()
		m.current = key
		m.mu.Unlock()
		m.logger.Debug(ctx, "request context defined",
			zap.String("container", c.id),
			zap.String("context", key))
		return key
	}
	m.logger.Trace(ctx, "no context rule matched")
	return m.Current()
}

// Current returns the current context key.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the current context starts with key. As with the
// pattern ^key*, the last character of key may be absent or repeated, so
// Is("tax") also matches "ta".
func (m *Manager) Is(key string) bool {
	if key == "" {
		return false
	}
	re := regexp.MustCompile("^" + regexp.QuoteMeta(key) + "*")
	return re.MatchString(m.Current())
}

// Matches reports whether the current context matches the regular
// expression pattern.
func (m *Manager) Matches(pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("context pattern %q: %w", pattern, err)
	}
	return re.MatchString(m.Current()), nil
}

// Equals reports whether the current context is exactly key.
func (m *Manager) Equals(key string) bool {
	return m.Current() == key
}

// OverrideCurrent replaces the current context, saving the previous one for
// RestoreCurrent.
func (m *Manager) OverrideCurrent(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backups = append(m.backups, m.current)
	m.current = key
}

// RestoreCurrent reinstates the context saved by the latest
// OverrideCurrent. It does nothing when there is nothing to restore.
func (m *Manager) RestoreCurrent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.backups); n > 0 {
		m.current = m.backups[n-1]
		m.backups = m.backups[:n-1]
	}
}
