// Package locations keeps named filesystem paths and URLs for a site.
//
// A Registry stores each location without its trailing slash and joins
// relative parts on lookup:
//
//	paths := locations.NewPaths(s)
//	paths.Get("uploads", "2024/05/photo.jpg")
//	// "/var/www/html/wp-content/uploads/2024/05/photo.jpg", true
package locations

import (
	"sort"
	"strings"
	"sync"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
	"github.com/fyrsmithlabs/bebop/pkg/site"
)

// Registry maps location keys to base paths or URLs. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries *collection.Collection
}

// New returns an empty registry. Keys are flat: "wp.uploads" is one key.
func New() *Registry {
	return &Registry{entries: collection.New().DisableDottedNotation()}
}

// NewPaths returns a registry seeded with the filesystem locations of s.
func NewPaths(s site.Site) *Registry {
	return New().
		Set("root", s.AbsPath).
		Set("admin", "").
		Set("plugins", "").
		Set("content", "").
		Set("uploads", s.UploadsDir).
		Set("themes", s.ThemesDir()).
		Set("theme", s.TemplateDir)
}

// NewURLs returns a registry seeded with the URLs of s.
func NewURLs(s site.Site) *Registry {
	return New().
		Set("home", s.HomeURL).
		Set("admin", s.AdminURL).
		Set("plugins", s.PluginsURL).
		Set("content", s.ContentURL).
		Set("uploads", s.UploadsURL).
		Set("themes", s.ThemesURL()).
		Set("theme", s.TemplateURL)
}

// Set stores value under key with trailing slashes removed. A value of
// exactly "/" is stored as is.
func (r *Registry) Set(key, value string) *Registry {
	if value != "/" {
		value = strings.TrimRight(value, "/")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.SetPath(key, value)
	return r
}

// SetAll stores every entry of values, in key order.
func (r *Registry) SetAll(values map[string]string) *Registry {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Set(k, values[k])
	}
	return r
}

func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.HasKey(key)
}

// Get returns the location stored under key with each non-empty relative
// part appended after a single slash.
func (r *Registry) Get(key string, relative ...string) (string, bool) {
	r.mu.RLock()
	v, ok := r.entries.Lookup(key)
	r.mu.RUnlock()
	if !ok {
		return "", false
	}

	location, _ := v.(string)
	for _, rel := range relative {
		if rel == "" {
			continue
		}
		location = strings.TrimRight(location, "/") + "/" + strings.TrimLeft(rel, "/")
	}
	return location, true
}

// Remove deletes key.
func (r *Registry) Remove(key string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.DeletePath(key)
	return r
}

// All returns a snapshot of every location in insertion order.
func (r *Registry) All() *collection.Map {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries.GetAll()
}

// Keys returns the location keys in insertion order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := r.entries.Keys("")
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
