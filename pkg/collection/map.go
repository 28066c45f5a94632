package collection

import (
	"fmt"
	"iter"
	"slices"
)

// Map is an ordered mapping from Key to value. Values are scalars, object
// references or nested *Map values. A Map whose keys are all indices is used
// as a sequence.
//
// The zero value is not usable; create maps with NewMap, MapOf or ListOf.
type Map struct {
	keys   []Key
	values map[Key]any
	next   int // next index handed out by Append
}

type entry struct {
	key   Key
	value any
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: make(map[Key]any)}
}

// MapOf builds a map from alternating key/value arguments. Keys may be
// strings, ints or Key values; pairs with any other key type are skipped, as
// is a trailing key without a value.
//
//	collection.MapOf(0, "zero", "single", "value")
func MapOf(pairs ...any) *Map {
	m := NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		switch k := pairs[i].(type) {
		case string:
			m.Set(StringKey(k), pairs[i+1])
		case int:
			m.Set(IndexKey(k), pairs[i+1])
		case Key:
			m.Set(k, pairs[i+1])
		}
	}
	return m
}

// ListOf builds a sequence holding values at indices 0..n-1.
func ListOf(values ...any) *Map {
	m := NewMap()
	for _, v := range values {
		m.Append(v)
	}
	return m
}

// Len returns the number of entries. A nil map has length 0.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under k.
func (m *Map) Get(k Key) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Set stores v under k. Existing keys keep their position; new keys are
// appended. Setting an index at or past the append counter advances it.
func (m *Map) Set(k Key, v any) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
	if k.isIndex && k.index >= m.next {
		m.next = k.index + 1
	}
}

// Append stores v under the next free index and returns that key.
func (m *Map) Append(v any) Key {
	k := IndexKey(m.next)
	m.Set(k, v)
	return k
}

// Prepend inserts v before every other entry and renumbers index keys from
// zero. String keys are left untouched.
func (m *Map) Prepend(v any) {
	entries := make([]entry, 0, len(m.keys)+1)
	entries = append(entries, entry{key: IndexKey(0), value: v})
	m.rebuild(append(entries, m.entries()...))
}

// Shift removes and returns the first entry, renumbering the remaining index
// keys from zero.
func (m *Map) Shift() (any, bool) {
	if m.Len() == 0 {
		return nil, false
	}
	entries := m.entries()
	m.rebuild(entries[1:])
	return entries[0].value, true
}

// Delete removes k and reports whether it was present. The append counter is
// not rewound.
func (m *Map) Delete(k Key) bool {
	if m == nil {
		return false
	}
	if _, ok := m.values[k]; !ok {
		return false
	}
	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(x Key) bool { return x == k })
	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Key {
	if m == nil {
		return []Key{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in insertion order.
func (m *Map) Values() []any {
	out := make([]any, 0, m.Len())
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Search returns the first key whose value equals v.
func (m *Map) Search(v any) (Key, bool) {
	if m == nil {
		return Key{}, false
	}
	for _, k := range m.keys {
		if valuesEqual(m.values[k], v) {
			return k, true
		}
	}
	return Key{}, false
}

// Merge returns a new map holding the entries of m followed by those of
// other. Index keys from both sides are renumbered; string keys from other
// overwrite those of m in place.
func (m *Map) Merge(other *Map) *Map {
	out := NewMap()
	for _, src := range []*Map{m, other} {
		if src == nil {
			continue
		}
		for _, k := range src.keys {
			if k.isIndex {
				out.Append(src.values[k])
			} else {
				out.Set(k, src.values[k])
			}
		}
	}
	return out
}

// Clone returns a deep copy of m. Nested maps are cloned; other values are
// copied as is.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := m.copy()
	for k, v := range out.values {
		if child, ok := v.(*Map); ok {
			out.values[k] = child.Clone()
		}
	}
	return out
}

// Equal reports whether m and other hold the same key/value pairs. Entry
// order is not significant; nested maps are compared recursively.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m.Len() == 0 && other.Len() == 0
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for k, v := range m.values {
		ov, ok := other.values[k]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

// All returns a sequence over a snapshot of the entries taken when All is
// called. The sequence can be ranged over any number of times.
func (m *Map) All() iter.Seq2[Key, any] {
	entries := m.entries()
	return func(yield func(Key, any) bool) {
		for _, e := range entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// String renders m as JSON, falling back to Go syntax for values JSON
// cannot encode.
func (m *Map) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.Native())
	}
	return string(b)
}

func (m *Map) entries() []entry {
	if m == nil {
		return nil
	}
	out := make([]entry, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, entry{key: k, value: m.values[k]})
	}
	return out
}

// rebuild replaces the content of m, assigning index keys sequentially.
func (m *Map) rebuild(entries []entry) {
	m.keys = make([]Key, 0, len(entries))
	m.values = make(map[Key]any, len(entries))
	m.next = 0
	for _, e := range entries {
		k := e.key
		if k.isIndex {
			k = IndexKey(m.next)
		}
		m.Set(k, e.value)
	}
}

// copy is a shallow copy.
func (m *Map) copy() *Map {
	out := &Map{
		keys:   slices.Clone(m.keys),
		values: make(map[Key]any, len(m.values)),
		next:   m.next,
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// isSequence reports whether the keys are exactly 0..n-1 in order.
func (m *Map) isSequence() bool {
	for i, k := range m.keys {
		if !k.isIndex || k.index != i {
			return false
		}
	}
	return true
}
