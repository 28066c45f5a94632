package feature

import (
	"testing"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("", nil)
	assert.ErrorIs(t, err, ErrInvalidID)

	f, err := New("search", map[string]any{
		"engine":     "native",
		"limits.max": 25,
		"post_types": []any{"post", "page"},
		"facets":     map[string]any{"category": true},
	})
	require.NoError(t, err)

	assert.Equal(t, "search", f.ID())
	assert.False(t, f.Enabled())
	assert.Equal(t, "native", f.Get("engine"))
	assert.Equal(t, 25, f.Get("limits.max"))
	assert.Equal(t, "page", f.Get("post_types.1"))
	assert.Equal(t, true, f.Get("facets.category"))
	assert.True(t, f.Has("limits"))
	assert.False(t, f.Has("missing"))
}

func TestFeature_Toggle(t *testing.T) {
	f, _ := New("cache", nil)

	assert.True(t, f.Enable().Enabled())
	assert.False(t, f.Disable().Enabled())
}

func TestFeature_All(t *testing.T) {
	f, _ := New("cache", nil)
	f.Set("ttl", 60).Set("driver.name", "redis")

	all := f.All()
	assert.True(t, all.Equal(collection.MapOf("ttl", 60, "driver", collection.MapOf("name", "redis"))))

	f.Set("ttl", 120)
	v, _ := all.Get(collection.StringKey("ttl"))
	assert.Equal(t, 60, v, "All returns a snapshot")
}

func TestManager(t *testing.T) {
	m := NewManager()

	assert.ErrorIs(t, m.Add(nil), ErrNilFeature)

	_, err := m.Define("", nil)
	assert.ErrorIs(t, err, ErrInvalidID)

	search, err := m.Define("search", map[string]any{"engine": "native"})
	require.NoError(t, err)
	search.Enable()

	cache, _ := New("cache.v2", nil)
	require.NoError(t, m.Add(cache))

	assert.True(t, m.Exists("search"))
	assert.True(t, m.Exists("cache.v2"), "ids are flat keys")
	assert.Same(t, search, m.Get("search"))
	assert.Nil(t, m.Get("missing"))
	assert.True(t, m.Enabled("search"))
	assert.False(t, m.Enabled("cache.v2"))
	assert.False(t, m.Enabled("missing"))

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "search", all[0].ID())
	assert.Equal(t, "cache.v2", all[1].ID())

	m.Clear()
	assert.Empty(t, m.All())
}
