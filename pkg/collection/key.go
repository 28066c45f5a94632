package collection

import "strconv"

// Key identifies an entry of a Map: either a string or an integer index.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// StringKey returns the key for s. Canonical non-negative decimals become
// index keys, matching how path segments address sequence elements.
func StringKey(s string) Key {
	if i, ok := parseIndex(s); ok {
		return IndexKey(i)
	}
	return Key{name: s}
}

// IndexKey returns the integer key i.
func IndexKey(i int) Key {
	return Key{index: i, isIndex: true}
}

// IsIndex reports whether k is an integer key.
func (k Key) IsIndex() bool {
	return k.isIndex
}

// Index returns the integer value of an index key and 0 for string keys.
func (k Key) Index() int {
	return k.index
}

// String returns the key as it would appear in a path segment.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// parseIndex accepts "0" and decimals without a leading zero.
func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
