package collection

// Add merges values into the entry at path. A *Map or []any value is merged
// onto an existing map, or replaces a non-map entry. Any other value is
// appended as one element, starting a new sequence when the entry is not a
// map.
func (c *Collection) Add(path string, values any) *Collection {
	current, _ := c.GetPath(path).(*Map)
	if incoming, ok := asMap(values); ok {
		if current != nil {
			c.SetPath(path, current.Merge(incoming))
		} else {
			c.SetPath(path, incoming)
		}
		return c
	}
	next := NewMap()
	if current != nil {
		next = current.copy()
	}
	next.Append(values)
	return c.SetPath(path, next)
}

// Push appends value to the sequence at path, or to the top level when path
// is empty. A missing or scalar entry becomes a one-element sequence.
func (c *Collection) Push(value any, path string) *Collection {
	if path == "" {
		c.root().Append(value)
		return c
	}
	next := NewMap()
	if current, ok := c.GetPath(path).(*Map); ok {
		next = current.copy()
	}
	next.Append(value)
	return c.SetPath(path, next)
}

func (c *Collection) PushList(values []any, path string) *Collection {
	for _, v := range values {
		c.Push(v, path)
	}
	return c
}

// Unshift inserts value at the front of the sequence at path, or of the top
// level when path is empty, renumbering index keys. A *Map or []any value is
// inserted element by element through UnshiftList.
func (c *Collection) Unshift(value any, path string) *Collection {
	if list, ok := asMap(value); ok {
		return c.UnshiftList(list.Values(), path)
	}
	if path == "" {
		c.root().Prepend(value)
		return c
	}
	next := NewMap()
	if current, ok := c.GetPath(path).(*Map); ok {
		next = current.copy()
	}
	next.Prepend(value)
	return c.SetPath(path, next)
}

// UnshiftList inserts values at the front keeping their relative order.
func (c *Collection) UnshiftList(values []any, path string) *Collection {
	for i := len(values) - 1; i >= 0; i-- {
		c.Unshift(values[i], path)
	}
	return c
}

// Shift removes and returns the first element of the sequence at path. At
// the top level it only removes when index 0 holds a value. The result is
// nil when nothing was removed.
func (c *Collection) Shift(path string) any {
	if path == "" {
		if v, ok := c.root().Get(IndexKey(0)); !ok || v == nil {
			return nil
		}
		v, _ := c.root().Shift()
		return v
	}
	current, ok := c.GetPath(path).(*Map)
	if !ok {
		return nil
	}
	next := current.copy()
	v, _ := next.Shift()
	c.SetPath(path, next)
	return v
}

// Pop removes the first element equal to value from the map at path, or
// from the top level when path is empty. When path holds a scalar, the path
// is removed if the scalar equals value. Remaining keys are not renumbered.
func (c *Collection) Pop(value any, path string) *Collection {
	if path == "" {
		if k, ok := c.root().Search(value); ok {
			c.root().Delete(k)
		}
		return c
	}
	parent, last, ok := c.resolveForWrite(path)
	if !ok {
		return c
	}
	target, _ := parent.Get(last)
	if m, ok := target.(*Map); ok {
		if k, found := m.Search(value); found {
			next := m.copy()
			next.Delete(k)
			parent.Set(last, next)
		}
		return c
	}
	if target != nil && valuesEqual(target, value) {
		parent.Delete(last)
	}
	return c
}

func (c *Collection) PopList(values []any, path string) *Collection {
	for _, v := range values {
		c.Pop(v, path)
	}
	return c
}

func asMap(v any) (*Map, bool) {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return nil, false
		}
		return t, true
	case []any:
		return ListOf(t...), true
	}
	return nil, false
}
