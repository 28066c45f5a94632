package collection

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringKey(t *testing.T) {
	tests := []struct {
		in      string
		isIndex bool
		want    string
	}{
		{in: "0", isIndex: true, want: "0"},
		{in: "12", isIndex: true, want: "12"},
		{in: "012", isIndex: false, want: "012"},
		{in: "-1", isIndex: false, want: "-1"},
		{in: "", isIndex: false, want: ""},
		{in: "single", isIndex: false, want: "single"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k := StringKey(tt.in)
			assert.Equal(t, tt.isIndex, k.IsIndex())
			assert.Equal(t, tt.want, k.String())
		})
	}
}

func TestMap_AppendAndSet(t *testing.T) {
	m := NewMap()
	assert.Equal(t, IndexKey(0), m.Append("a"))
	m.Set(IndexKey(5), "b")
	assert.Equal(t, IndexKey(6), m.Append("c"))

	m.Set(StringKey("name"), "x")
	m.Set(IndexKey(0), "a2")

	assert.Equal(t, []Key{IndexKey(0), IndexKey(5), IndexKey(6), StringKey("name")}, m.Keys())
	assert.Equal(t, []any{"a2", "b", "c", "x"}, m.Values())
}

func TestMap_DeleteKeepsCounter(t *testing.T) {
	m := ListOf("a", "b")
	assert.True(t, m.Delete(IndexKey(1)))
	assert.False(t, m.Delete(IndexKey(1)))
	assert.Equal(t, IndexKey(2), m.Append("c"))
}

func TestMap_PrependRenumbers(t *testing.T) {
	m := MapOf(3, "three", "name", "x", 7, "seven")
	m.Prepend("first")

	assert.Equal(t, []Key{IndexKey(0), IndexKey(1), StringKey("name"), IndexKey(2)}, m.Keys())
	assert.Equal(t, []any{"first", "three", "x", "seven"}, m.Values())
	assert.Equal(t, IndexKey(3), m.Append("next"))
}

func TestMap_Shift(t *testing.T) {
	m := MapOf(0, "zero", "name", "x", 1, "one")

	v, ok := m.Shift()
	require.True(t, ok)
	assert.Equal(t, "zero", v)
	assert.Equal(t, []Key{StringKey("name"), IndexKey(0)}, m.Keys())

	_, ok = NewMap().Shift()
	assert.False(t, ok)
}

func TestMap_Merge(t *testing.T) {
	left := MapOf(0, "zero", "single", "value", 1, "one")
	right := MapOf(0, "a", "single", "override", 1, "b")

	got := left.Merge(right)

	assert.Equal(t, []Key{IndexKey(0), StringKey("single"), IndexKey(1), IndexKey(2), IndexKey(3)}, got.Keys())
	assert.Equal(t, []any{"zero", "override", "one", "a", "b"}, got.Values())
	assert.Equal(t, "value", left.values[StringKey("single")], "merge must not modify its receiver")
}

func TestMap_CloneIsDeep(t *testing.T) {
	inner := ListOf("a")
	m := MapOf("inner", inner)

	clone := m.Clone()
	inner.Append("b")

	got, _ := clone.Get(StringKey("inner"))
	assert.Equal(t, 1, got.(*Map).Len())
}

func TestMap_Equal(t *testing.T) {
	a := MapOf("x", 1, "y", ListOf("a", "b"))
	b := MapOf("y", ListOf("a", "b"), "x", 1.0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MapOf("x", 1)))
	assert.False(t, a.Equal(MapOf("x", 1, "y", ListOf("b", "a"))))
	assert.True(t, NewMap().Equal(nil))
}

func TestMap_Search(t *testing.T) {
	m := MapOf(0, "zero", "n", int64(3), "nested", ListOf("a"))

	k, ok := m.Search(3)
	require.True(t, ok)
	assert.Equal(t, StringKey("n"), k)

	k, ok = m.Search(ListOf("a"))
	require.True(t, ok)
	assert.Equal(t, StringKey("nested"), k)

	_, ok = m.Search("missing")
	assert.False(t, ok)

	_, ok = m.Search(nil)
	assert.False(t, ok)
}

func TestMap_AllIsSnapshot(t *testing.T) {
	m := ListOf("a", "b")
	seq := m.All()
	m.Append("c")

	var got []any
	for _, v := range seq {
		got = append(got, v)
	}
	assert.Equal(t, []any{"a", "b"}, got)

	got = got[:0]
	for _, v := range seq {
		got = append(got, v)
		break
	}
	assert.Equal(t, []any{"a"}, got)
}

func TestFromNativeAndNative(t *testing.T) {
	in := map[string]any{
		"b":    "two",
		"a":    []any{"x", "y"},
		"deep": map[string]any{"k": 1},
	}

	m := FromNative(in)

	assert.Equal(t, []Key{StringKey("a"), StringKey("b"), StringKey("deep")}, m.Keys())
	if diff := cmp.Diff(in, m.Native()); diff != "" {
		t.Errorf("Native() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, FromNative("scalar").Len())
}

func TestMap_MarshalJSON(t *testing.T) {
	m := MapOf("z", 1, "a", ListOf("x", true), "empty", NewMap(), 4, nil)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":["x",true],"empty":{},"4":null}`, string(b))
}

func TestMap_UnmarshalYAML(t *testing.T) {
	doc := `
zeta: 1
alpha:
  - one
  - two
nested:
  "0": zero
  flag: true
`
	m := NewMap()
	require.NoError(t, yaml.Unmarshal([]byte(doc), m))

	assert.Equal(t, []Key{StringKey("zeta"), StringKey("alpha"), StringKey("nested")}, m.Keys())

	alpha, _ := m.Get(StringKey("alpha"))
	assert.Equal(t, []any{"one", "two"}, alpha.(*Map).Values())

	nested, _ := m.Get(StringKey("nested"))
	zero, ok := nested.(*Map).Get(IndexKey(0))
	require.True(t, ok)
	assert.Equal(t, "zero", zero)

	assert.Error(t, yaml.Unmarshal([]byte("just a scalar"), NewMap()))
}

func TestMap_UnmarshalYAML_MergeKeys(t *testing.T) {
	doc := `
base: &base
  color: red
  name: base
extra: &extra
  color: blue
  size: 2
theme:
  <<: *base
  name: x
both:
  <<: [*base, *extra]
`
	m := NewMap()
	require.NoError(t, yaml.Unmarshal([]byte(doc), m))
	c := Wrap(m)

	assert.Equal(t, []Key{StringKey("name"), StringKey("color")}, c.Keys("theme"))
	assert.Equal(t, "x", c.GetPath("theme.name"))
	assert.Equal(t, "red", c.GetPath("theme.color"))
	assert.False(t, c.HasKey("theme.<<"))

	assert.Equal(t, "red", c.GetPath("both.color"))
	assert.Equal(t, "base", c.GetPath("both.name"))
	assert.Equal(t, 2, c.GetPath("both.size"))

	var native map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &native))
	if diff := cmp.Diff(native, m.Native()); diff != "" {
		t.Errorf("merged document mismatch (-yaml +collection):\n%s", diff)
	}

	assert.Error(t, yaml.Unmarshal([]byte("a:\n  <<: 1\n"), NewMap()))
}

func TestMap_UnmarshalYAML_RecursiveAlias(t *testing.T) {
	for _, doc := range []string{
		"a: &x [1, *x]\n",
		"a: &x {b: *x}\n",
	} {
		err := yaml.Unmarshal([]byte(doc), NewMap())
		require.Error(t, err, doc)
		assert.Contains(t, err.Error(), "contains itself", doc)
	}
}

func TestMap_UnmarshalYAML_ExcessiveAliasing(t *testing.T) {
	var b strings.Builder
	b.WriteString("a: &a [00,00,00,00,00,00,00,00,00]\n")
	prev := "a"
	for _, name := range []string{"b", "c", "d", "e", "f", "g", "h", "i"} {
		refs := strings.TrimSuffix(strings.Repeat("*"+prev+",", 9), ",")
		fmt.Fprintf(&b, "%s: &%s [%s]\n", name, name, refs)
		prev = name
	}

	err := yaml.Unmarshal([]byte(b.String()), NewMap())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "excessive aliasing")
}
