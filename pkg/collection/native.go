package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// FromNative converts Go maps and slices into a *Map, recursively. Map keys
// are sorted since Go maps carry no order. Values of any other kind yield an
// empty map.
func FromNative(v any) *Map {
	if m, ok := fromNative(v).(*Map); ok {
		return m
	}
	return NewMap()
}

func fromNative(v any) any {
	if v == nil {
		return nil
	}
	if m, ok := v.(*Map); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		type kv struct {
			key   Key
			value reflect.Value
		}
		pairs := make([]kv, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			pairs = append(pairs, kv{key: nativeKey(iter.Key()), value: iter.Value()})
		}
		sort.SliceStable(pairs, func(i, j int) bool { return keyLess(pairs[i].key, pairs[j].key) })
		out := NewMap()
		for _, p := range pairs {
			out.Set(p.key, fromNative(p.value.Interface()))
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := NewMap()
		for i := 0; i < rv.Len(); i++ {
			out.Append(fromNative(rv.Index(i).Interface()))
		}
		return out
	default:
		return v
	}
}

func nativeKey(rv reflect.Value) Key {
	switch rv.Kind() {
	case reflect.String:
		return StringKey(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() >= 0 {
			return IndexKey(int(rv.Int()))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IndexKey(int(rv.Uint()))
	}
	return StringKey(fmt.Sprint(rv.Interface()))
}

// keyLess orders index keys numerically before string keys.
func keyLess(a, b Key) bool {
	switch {
	case a.isIndex && b.isIndex:
		return a.index < b.index
	case a.isIndex != b.isIndex:
		return a.isIndex
	default:
		return a.name < b.name
	}
}

// Native converts m into plain Go values: sequences become []any and other
// maps become map[string]any.
func (m *Map) Native() any {
	if m == nil {
		return nil
	}
	if len(m.keys) > 0 && m.isSequence() {
		out := make([]any, 0, len(m.keys))
		for _, k := range m.keys {
			out = append(out, toNative(m.values[k]))
		}
		return out
	}
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k.String()] = toNative(m.values[k])
	}
	return out
}

func toNative(v any) any {
	if m, ok := v.(*Map); ok {
		return m.Native()
	}
	return v
}

// MarshalJSON encodes m as a JSON object in insertion order, or as an array
// when m is a sequence.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Map) encodeJSON(buf *bytes.Buffer) error {
	if m == nil {
		buf.WriteString("null")
		return nil
	}
	seq := m.isSequence() && len(m.keys) > 0
	if seq {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !seq {
			name, _ := json.Marshal(k.String())
			buf.Write(name)
			buf.WriteByte(':')
		}
		if child, ok := m.values[k].(*Map); ok {
			if err := child.encodeJSON(buf); err != nil {
				return err
			}
			continue
		}
		b, err := json.Marshal(m.values[k])
		if err != nil {
			return fmt.Errorf("encoding key %q: %w", k.String(), err)
		}
		buf.Write(b)
	}
	if seq {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return nil
}

// UnmarshalYAML decodes a YAML mapping or sequence into m, keeping document
// order. Since YAML is a superset of JSON, JSON documents decode as well.
// Merge keys are expanded. Recursive anchors and excessive aliasing are
// rejected with the errors yaml.v3 itself reports.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode && node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a mapping or sequence", node.Line)
	}
	if err := node.Decode(new(any)); err != nil {
		return err
	}
	d := &nodeDecoder{active: make(map[*yaml.Node]bool)}
	v, err := d.decode(node)
	if err != nil {
		return err
	}
	*m = *v.(*Map)
	return nil
}

// maxAliasExpansions bounds the nodes decoded through aliases in a single
// document.
const maxAliasExpansions = 10000

type nodeDecoder struct {
	active     map[*yaml.Node]bool
	expansions int
}

func (d *nodeDecoder) decode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return d.decode(node.Content[0])
	case yaml.AliasNode:
		return d.alias(node)
	case yaml.MappingNode:
		return d.mapping(node)
	case yaml.SequenceNode:
		out := NewMap()
		for _, child := range node.Content {
			v, err := d.decode(child)
			if err != nil {
				return nil, err
			}
			out.Append(v)
		}
		return out, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return v, nil
	}
}

func (d *nodeDecoder) alias(node *yaml.Node) (any, error) {
	target := node.Alias
	if target == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", node.Line, node.Value)
	}
	if d.active[target] {
		return nil, fmt.Errorf("line %d: anchor %q value contains itself", node.Line, node.Value)
	}
	d.expansions++
	if d.expansions > maxAliasExpansions {
		return nil, fmt.Errorf("line %d: document contains excessive aliasing", node.Line)
	}
	d.active[target] = true
	defer delete(d.active, target)
	return d.decode(target)
}

// mapping decodes a mapping node. Keys written explicitly take precedence
// over merged ones, and earlier merge sources over later ones.
func (d *nodeDecoder) mapping(node *yaml.Node) (any, error) {
	out := NewMap()
	var merges []*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge" {
			merges = append(merges, node.Content[i+1])
			continue
		}
		v, err := d.decode(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		out.Set(StringKey(key.Value), v)
	}
	for _, src := range merges {
		if err := d.merge(out, src); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *nodeDecoder) merge(out *Map, src *yaml.Node) error {
	resolved := src
	if resolved.Kind == yaml.AliasNode && resolved.Alias != nil {
		resolved = resolved.Alias
	}
	var sources []*yaml.Node
	switch resolved.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{src}
	case yaml.SequenceNode:
		sources = resolved.Content
	default:
		return fmt.Errorf("line %d: map merge requires map or sequence of maps as the value", src.Line)
	}
	for _, s := range sources {
		v, err := d.decode(s)
		if err != nil {
			return err
		}
		m, ok := v.(*Map)
		if !ok {
			return fmt.Errorf("line %d: map merge requires map or sequence of maps as the value", s.Line)
		}
		for k, val := range m.All() {
			if _, exists := out.Get(k); !exists {
				out.Set(k, val)
			}
		}
	}
	return nil
}
