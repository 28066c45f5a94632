// Package tracker indexes live objects by type and id so unrelated parts of
// a plugin can find them again.
package tracker

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
	"github.com/google/uuid"
)

// ErrInvalidArgument is returned for nil objects and empty types or ids.
var ErrInvalidArgument = errors.New("tracker: invalid argument")

// Trackable is implemented by objects that can be tracked.
type Trackable interface {
	TrackableID() string
	TrackableType() string
}

// Base is an embeddable Trackable implementation.
type Base struct {
	id  string
	typ string
}

// NewBase returns a Base of type typ with a random UUID id.
func NewBase(typ string) Base {
	return Base{id: uuid.NewString(), typ: typ}
}

// NewBaseWithID returns a Base with a caller-chosen id.
func NewBaseWithID(typ, id string) Base {
	return Base{id: id, typ: typ}
}

func (b Base) TrackableID() string   { return b.id }
func (b Base) TrackableType() string { return b.typ }

// Tracker stores objects in one flat collection per type. It is safe for
// concurrent use.
type Tracker struct {
	mu    sync.RWMutex
	lists *collection.Collection
}

func New() *Tracker {
	return &Tracker{lists: collection.New().DisableDottedNotation()}
}

// Track stores obj under its type and id, replacing any object with the
// same pair.
func (t *Tracker) Track(obj Trackable) error {
	if obj == nil {
		return fmt.Errorf("%w: nil object", ErrInvalidArgument)
	}
	typ, id := obj.TrackableType(), obj.TrackableID()
	if typ == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidArgument)
	}
	if id == "" {
		return fmt.Errorf("%w: empty id for type %q", ErrInvalidArgument, typ)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	list, ok := t.lists.GetPath(typ).(*collection.Collection)
	if !ok {
		list = collection.New().DisableDottedNotation()
		t.lists.SetPath(typ, list)
	}
	list.SetPath(id, obj)
	return nil
}

// Get returns the object tracked under typ and id. It returns nil and no
// error when nothing matches.
func (t *Tracker) Get(typ, id string) (Trackable, error) {
	if typ == "" || id == "" {
		return nil, fmt.Errorf("%w: type and id are required", ErrInvalidArgument)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	list, ok := t.lists.GetPath(typ).(*collection.Collection)
	if !ok {
		return nil, nil
	}
	obj, _ := list.GetPath(id).(Trackable)
	return obj, nil
}

// Untrack removes the object tracked under typ and id.
func (t *Tracker) Untrack(typ, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if list, ok := t.lists.GetPath(typ).(*collection.Collection); ok {
		list.DeletePath(id)
	}
}

// Types returns the tracked types in the order they were first seen.
func (t *Tracker) Types() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []string
	for k := range t.lists.All() {
		out = append(out, k.String())
	}
	return out
}

// Count returns the number of objects tracked under typ.
func (t *Tracker) Count(typ string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	list, ok := t.lists.GetPath(typ).(*collection.Collection)
	if !ok {
		return 0
	}
	n, _ := list.Count("")
	return n
}
