package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fyrsmithlabs/bebop/pkg/collection"
	"gopkg.in/yaml.v3"
)

// LoadCollection reads a YAML, JSON or TOML document into a collection,
// keeping the key order of the document.
func LoadCollection(path string) (*collection.Collection, error) {
	content, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var m *collection.Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		m = collection.NewMap()
		if len(strings.TrimSpace(string(content))) > 0 {
			if err := yaml.Unmarshal(content, m); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	case ".toml":
		m, err = decodeTOML(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return collection.Wrap(m), nil
}

// decodeTOML builds an ordered map by replaying the keys in the order the
// decoder met them.
func decodeTOML(content []byte) (*collection.Map, error) {
	raw := map[string]any{}
	md, err := toml.Decode(string(content), &raw)
	if err != nil {
		return nil, err
	}

	out := collection.NewMap()
	for _, key := range md.Keys() {
		v, ok := lookup(raw, key)
		if !ok {
			// below an array of tables, already copied with its parent
			continue
		}
		parent := ensure(out, key[:len(key)-1])
		last := collection.StringKey(key[len(key)-1])
		switch val := v.(type) {
		case map[string]any:
			if existing, ok := parent.Get(last); ok {
				if _, isMap := existing.(*collection.Map); isMap {
					continue
				}
			}
			parent.Set(last, collection.NewMap())
		case []any, []map[string]any:
			parent.Set(last, collection.FromNative(val))
		default:
			parent.Set(last, val)
		}
	}
	return out, nil
}

func lookup(raw map[string]any, key toml.Key) (any, bool) {
	var cur any = raw
	for _, part := range key {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func ensure(root *collection.Map, parts []string) *collection.Map {
	cur := root
	for _, p := range parts {
		k := collection.StringKey(p)
		v, _ := cur.Get(k)
		next, ok := v.(*collection.Map)
		if !ok {
			next = collection.NewMap()
			cur.Set(k, next)
		}
		cur = next
	}
	return cur
}
