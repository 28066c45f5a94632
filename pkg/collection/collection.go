package collection

import (
	"iter"
	"strings"
)

// DefaultSeparator splits paths when dotted notation is enabled.
const DefaultSeparator = "."

// Collection is a mutable ordered container addressed by flat keys or by
// separator-delimited paths. Methods never fail: unusable arguments turn an
// operation into a no-op or an absent result. Mutators return the receiver.
//
// Writes through a path copy every nested map on the way, so maps handed to
// SetPath and snapshots taken with GetAll are never changed by later path
// writes. The zero value is an empty collection using flat keys.
type Collection struct {
	data      *Map
	dotted    bool
	separator string
}

// New returns an empty collection with dotted notation enabled.
func New() *Collection {
	return &Collection{
		data:      NewMap(),
		dotted:    true,
		separator: DefaultSeparator,
	}
}

// NewFrom returns a collection populated from initial through SetList.
func NewFrom(initial *Map) *Collection {
	return New().SetList(initial)
}

// Wrap returns a collection backed by m. Keys are kept as they are, even
// when they contain the separator. A nil m yields an empty collection.
func Wrap(m *Map) *Collection {
	c := New()
	if m != nil {
		c.data = m
	}
	return c
}

func (c *Collection) EnableDottedNotation() *Collection {
	c.dotted = true
	if c.separator == "" {
		c.separator = DefaultSeparator
	}
	return c
}

func (c *Collection) DisableDottedNotation() *Collection {
	c.dotted = false
	return c
}

func (c *Collection) DottedNotation() bool {
	return c.dotted
}

// SetPathSeparator replaces the path separator. An empty separator is
// ignored.
func (c *Collection) SetPathSeparator(sep string) *Collection {
	if sep != "" {
		c.separator = sep
	}
	return c
}

func (c *Collection) PathSeparator() string {
	return c.separator
}

// Clear removes every entry.
func (c *Collection) Clear() *Collection {
	c.data = NewMap()
	return c
}

// Set writes value at the location named by arg. A Path is written through
// SetPath, an Index appends value to the top level, a PathList writes value
// at every listed path and a *Map is applied with SetList.
func (c *Collection) Set(arg Arg, value any) *Collection {
	switch a := arg.(type) {
	case Path:
		c.SetPath(string(a), value)
	case Index:
		c.root().Append(value)
	case PathList:
		for _, p := range a {
			c.SetPath(p, value)
		}
	case *Map:
		c.SetList(a)
	}
	return c
}

// Flag sets path to true.
func (c *Collection) Flag(path string) *Collection {
	return c.SetPath(path, true)
}

// SetList writes every entry of values. String keys are treated as paths;
// index keys append their value to the top level.
func (c *Collection) SetList(values *Map) *Collection {
	for k, v := range values.All() {
		if k.isIndex {
			c.root().Append(v)
			continue
		}
		c.SetPath(k.name, v)
	}
	return c
}

// SetPath writes value at path. Missing intermediate segments are created as
// empty maps and intermediate scalars are replaced by empty maps.
func (c *Collection) SetPath(path string, value any) *Collection {
	segs := c.segments(path)
	parent := descendForWrite(c.root(), segs[:len(segs)-1])
	parent.Set(segs[len(segs)-1], value)
	return c
}

// GetPath returns the value at path, or nil when it is absent.
func (c *Collection) GetPath(path string) any {
	v, _ := c.Lookup(path)
	return v
}

// Lookup returns the value at path and whether it is present. A stored nil
// is reported as absent.
func (c *Collection) Lookup(path string) (any, bool) {
	parent, last, ok := c.resolve(path)
	if !ok {
		return nil, false
	}
	v, ok := parent.Get(last)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// HasKey reports whether a non-nil value is stored at path.
func (c *Collection) HasKey(path string) bool {
	_, ok := c.Lookup(path)
	return ok
}

// DeletePath removes path. A missing or scalar intermediate segment makes
// this a no-op.
func (c *Collection) DeletePath(path string) *Collection {
	if parent, last, ok := c.resolveForWrite(path); ok {
		parent.Delete(last)
	}
	return c
}

// Get reads the location named by arg. A Path returns the stored value, a
// PathList returns the GetList result and an Index returns the top-level
// entry at that index. Anything else yields nil.
func (c *Collection) Get(arg Arg) any {
	switch a := arg.(type) {
	case Path:
		return c.GetPath(string(a))
	case PathList:
		return c.GetList(a)
	case Index:
		if a < 0 {
			return nil
		}
		v, _ := c.root().Get(IndexKey(int(a)))
		return v
	}
	return nil
}

// GetList returns a new map holding the values of the requested paths,
// nested the way the paths are. Absent paths hold nil.
//
//	c.GetList([]string{"list.single", "list.list"})
//	// {list: {single: ..., list: ...}}
func (c *Collection) GetList(paths []string) *Map {
	out := NewMap()
	for _, p := range paths {
		segs := c.segments(p)
		parent := descendForWrite(out, segs[:len(segs)-1])
		parent.Set(segs[len(segs)-1], c.GetPath(p))
	}
	return out
}

// GetAll returns a shallow snapshot of the top-level entries.
func (c *Collection) GetAll() *Map {
	return c.root().copy()
}

// Remove deletes the location named by arg. A Path is removed through
// DeletePath, a PathList through RemoveList and an Index removes that
// top-level entry.
func (c *Collection) Remove(arg Arg) *Collection {
	switch a := arg.(type) {
	case Path:
		c.DeletePath(string(a))
	case PathList:
		c.RemoveList(a)
	case Index:
		if a >= 0 {
			c.root().Delete(IndexKey(int(a)))
		}
	}
	return c
}

func (c *Collection) RemoveList(paths []string) *Collection {
	for _, p := range paths {
		c.DeletePath(p)
	}
	return c
}

// All returns a sequence over a snapshot of the top-level entries.
func (c *Collection) All() iter.Seq2[Key, any] {
	return c.root().All()
}

// segments splits path into keys. The result always has at least one
// element.
func (c *Collection) segments(path string) []Key {
	if !c.dotted || !strings.Contains(path, c.separator) {
		return []Key{StringKey(path)}
	}
	parts := strings.Split(path, c.separator)
	keys := make([]Key, len(parts))
	for i, p := range parts {
		keys[i] = StringKey(p)
	}
	return keys
}

// resolve walks path for reading and returns the map holding the final
// segment together with that segment's key.
func (c *Collection) resolve(path string) (*Map, Key, bool) {
	segs := c.segments(path)
	cur := c.root()
	for _, k := range segs[:len(segs)-1] {
		v, ok := cur.Get(k)
		if !ok {
			return nil, Key{}, false
		}
		next, ok := v.(*Map)
		if !ok || next == nil {
			return nil, Key{}, false
		}
		cur = next
	}
	return cur, segs[len(segs)-1], true
}

// resolveForWrite is resolve for mutations. The maps leading to the final
// segment are replaced by copies before being returned.
func (c *Collection) resolveForWrite(path string) (*Map, Key, bool) {
	if _, _, ok := c.resolve(path); !ok {
		return nil, Key{}, false
	}
	segs := c.segments(path)
	return descendForWrite(c.root(), segs[:len(segs)-1]), segs[len(segs)-1], true
}

// root returns the top-level map, allocating it for a zero Collection.
func (c *Collection) root() *Map {
	if c.data == nil {
		c.data = NewMap()
	}
	return c.data
}

// descendForWrite walks keys from root, creating an empty map wherever the
// current entry is missing or is not a map, and returns the innermost map.
// Existing maps along the way are copied and stored back in their parent.
func descendForWrite(root *Map, keys []Key) *Map {
	cur := root
	for _, k := range keys {
		v, _ := cur.Get(k)
		next, ok := v.(*Map)
		if ok && next != nil {
			next = next.copy()
		} else {
			next = NewMap()
		}
		cur.Set(k, next)
		cur = next
	}
	return cur
}
