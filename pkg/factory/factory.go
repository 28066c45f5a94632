// Package factory maps ids to constructors so callers can create objects by
// name.
package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

var (
	ErrInvalidID      = errors.New("factory: id must not be empty")
	ErrNilConstructor = errors.New("factory: nil constructor")
)

// Constructor builds a T from the arguments passed to Create.
type Constructor[T any] func(args ...any) (T, error)

// Factory is a registry of constructors keyed by id. It is safe for
// concurrent use.
type Factory[T any] struct {
	mu     sync.RWMutex
	makers *collection.Collection
	types  map[reflect.Type]string
}

func New[T any]() *Factory[T] {
	return &Factory[T]{
		makers: collection.New().DisableDottedNotation(),
		types:  make(map[reflect.Type]string),
	}
}

// Set registers fn under id, replacing any previous constructor.
func (f *Factory[T]) Set(id string, fn Constructor[T]) error {
	if id == "" {
		return ErrInvalidID
	}
	if fn == nil {
		return fmt.Errorf("set %q: %w", id, ErrNilConstructor)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.makers.SetPath(id, fn)
	return nil
}

func (f *Factory[T]) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.makers.DeletePath(id)
}

func (f *Factory[T]) CanManufacture(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.makers.HasKey(id)
}

// IDs returns the registered ids in registration order.
func (f *Factory[T]) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []string
	for k := range f.makers.All() {
		out = append(out, k.String())
	}
	return out
}

// Create runs the constructor registered under id. The boolean is false when
// no constructor is registered, in which case the zero T is returned without
// an error.
func (f *Factory[T]) Create(id string, args ...any) (T, bool, error) {
	var zero T

	f.mu.RLock()
	fn, ok := f.makers.GetPath(id).(Constructor[T])
	f.mu.RUnlock()
	if !ok {
		return zero, false, nil
	}

	obj, err := fn(args...)
	if err != nil {
		return zero, true, fmt.Errorf("create %q: %w", id, err)
	}
	if t := reflect.TypeOf(obj); t != nil {
		f.mu.Lock()
		f.types[t] = id
		f.mu.Unlock()
	}
	return obj, true, nil
}

// InstanceID returns the id whose constructor produced objects of obj's
// dynamic type.
func (f *Factory[T]) InstanceID(obj T) (string, bool) {
	t := reflect.TypeOf(obj)
	if t == nil {
		return "", false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	id, ok := f.types[t]
	return id, ok
}
