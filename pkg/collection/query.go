package collection

// Keys returns the keys of the map at path, or of the top level when path is
// empty. The result is nil when the target is not a map.
func (c *Collection) Keys(path string) []Key {
	target := c.target(path)
	if target == nil {
		return nil
	}
	return target.Keys()
}

// HasValue reports whether value is a direct element of the map at path (or
// of the top level when path is empty). A scalar target is compared with
// value directly.
func (c *Collection) HasValue(value any, path string) bool {
	if path == "" {
		_, ok := c.root().Search(value)
		return ok
	}
	data := c.GetPath(path)
	if m, ok := data.(*Map); ok {
		_, found := m.Search(value)
		return found
	}
	return valuesEqual(data, value)
}

// Count returns the number of direct elements of the map at path, or of the
// top level when path is empty. It reports false when the target is missing,
// is not a map or is empty.
func (c *Collection) Count(path string) (int, bool) {
	n := c.target(path).Len()
	return n, n > 0
}

func (c *Collection) target(path string) *Map {
	if path == "" {
		return c.root()
	}
	m, _ := c.GetPath(path).(*Map)
	return m
}
