// Package site describes the WordPress installation bebop runs against.
package site

import (
	"errors"
	"path"
	"strings"
)

// ErrMissingAbsPath is returned by Validate when AbsPath is empty.
var ErrMissingAbsPath = errors.New("site: abs_path is required")

// Site holds the values the registries derive their defaults from.
type Site struct {
	AbsPath     string `koanf:"abs_path"`
	HomeURL     string `koanf:"home_url"`
	AdminURL    string `koanf:"admin_url"`
	PluginsURL  string `koanf:"plugins_url"`
	ContentURL  string `koanf:"content_url"`
	UploadsDir  string `koanf:"uploads_dir"`
	UploadsURL  string `koanf:"uploads_url"`
	TemplateDir string `koanf:"template_dir"`
	TemplateURL string `koanf:"template_url"`
	ServerName  string `koanf:"server_name"`
	Multisite   bool   `koanf:"multisite"`
}

// Validate checks that the site can anchor relative paths.
func (s Site) Validate() error {
	if s.AbsPath == "" {
		return ErrMissingAbsPath
	}
	return nil
}

// ThemesDir is the directory holding the active theme.
func (s Site) ThemesDir() string {
	return parent(s.TemplateDir)
}

// ThemesURL is the URL of the directory holding the active theme.
func (s Site) ThemesURL() string {
	return parent(s.TemplateURL)
}

// parent strips the last path element, so "/wp/themes/twenty" becomes
// "/wp/themes". URL schemes are kept intact.
func parent(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	base := path.Base(p)
	return strings.TrimSuffix(p, "/"+base)
}
