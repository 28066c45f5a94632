package locations

import (
	"sync"
	"testing"

	"github.com/fyrsmithlabs/bebop/pkg/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() site.Site {
	return site.Site{
		AbsPath:     "/var/www/html/",
		HomeURL:     "https://example.com/",
		AdminURL:    "https://example.com/wp-admin/",
		PluginsURL:  "https://example.com/wp-content/plugins",
		ContentURL:  "https://example.com/wp-content",
		UploadsDir:  "/var/www/html/wp-content/uploads",
		UploadsURL:  "https://example.com/wp-content/uploads",
		TemplateDir: "/var/www/html/wp-content/themes/twenty",
		TemplateURL: "https://example.com/wp-content/themes/twenty",
	}
}

func TestNewPaths(t *testing.T) {
	paths := NewPaths(testSite())

	assert.Equal(t, []string{"root", "admin", "plugins", "content", "uploads", "themes", "theme"}, paths.Keys())

	root, ok := paths.Get("root")
	require.True(t, ok)
	assert.Equal(t, "/var/www/html", root)

	themes, _ := paths.Get("themes")
	assert.Equal(t, "/var/www/html/wp-content/themes", themes)

	assert.True(t, paths.Has("admin"), "empty defaults are still present")
}

func TestNewURLs(t *testing.T) {
	urls := NewURLs(testSite())

	home, ok := urls.Get("home")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", home)

	themes, _ := urls.Get("themes")
	assert.Equal(t, "https://example.com/wp-content/themes", themes)
}

func TestRegistry_SetTrimsTrailingSlash(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "single trailing slash", value: "/srv/assets/", want: "/srv/assets"},
		{name: "many trailing slashes", value: "/srv/assets///", want: "/srv/assets"},
		{name: "root slash kept", value: "/", want: "/"},
		{name: "no slash", value: "/srv", want: "/srv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New().Set("k", tt.value).Get("k")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_GetRelative(t *testing.T) {
	r := New().Set("uploads", "/srv/uploads/").Set("root", "/")

	got, _ := r.Get("uploads", "/2024/05/photo.jpg")
	assert.Equal(t, "/srv/uploads/2024/05/photo.jpg", got)

	got, _ = r.Get("root", "wp-config.php")
	assert.Equal(t, "/wp-config.php", got)

	got, _ = r.Get("uploads", "", "cache", "x.css")
	assert.Equal(t, "/srv/uploads/cache/x.css", got)

	_, ok := r.Get("missing", "file")
	assert.False(t, ok)
}

func TestRegistry_FlatKeys(t *testing.T) {
	r := New().Set("assets.css", "/srv/css")

	got, ok := r.Get("assets.css")
	require.True(t, ok)
	assert.Equal(t, "/srv/css", got)
	assert.False(t, r.Has("assets"))
}

func TestRegistry_SetAllAndRemove(t *testing.T) {
	r := New().SetAll(map[string]string{"b": "/b/", "a": "/a"})

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	assert.Equal(t, 2, r.All().Len())

	r.Remove("a")
	assert.False(t, r.Has("a"))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Set("shared", "/srv/")
			_, _ = r.Get("shared", "x")
		}()
	}
	wg.Wait()
	assert.True(t, r.Has("shared"))
}
