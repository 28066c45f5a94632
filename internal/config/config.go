// Package config loads bebop configuration from YAML or TOML files with
// environment overrides, and reads ordered documents into collections.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/bebop/pkg/site"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level configuration.
type Config struct {
	Site         site.Site                    `koanf:"site"`
	Environments map[string]EnvironmentConfig `koanf:"environments"`
	Features     map[string]FeatureConfig     `koanf:"features"`
	Paths        map[string]string            `koanf:"paths"`
	URLs         map[string]string            `koanf:"urls"`

	k *koanf.Koanf
}

// EnvironmentConfig lists the server names an environment answers to.
type EnvironmentConfig struct {
	Hosts []string `koanf:"hosts"`
}

type FeatureConfig struct {
	Enabled bool           `koanf:"enabled"`
	Options map[string]any `koanf:"options"`
}

// Default returns the configuration of a stock local install.
func Default() *Config {
	return &Config{
		Site: site.Site{
			AbsPath:     "/var/www/html/",
			HomeURL:     "http://localhost",
			AdminURL:    "http://localhost/wp-admin/",
			PluginsURL:  "http://localhost/wp-content/plugins",
			ContentURL:  "http://localhost/wp-content",
			UploadsDir:  "/var/www/html/wp-content/uploads",
			UploadsURL:  "http://localhost/wp-content/uploads",
			TemplateDir: "/var/www/html/wp-content/themes/default",
			TemplateURL: "http://localhost/wp-content/themes/default",
			ServerName:  "localhost",
		},
	}
}

// Validate checks cfg for errors.
func (c *Config) Validate() error {
	if err := c.Site.Validate(); err != nil {
		return err
	}
	for key, env := range c.Environments {
		if strings.TrimSpace(key) == "" {
			return errors.New("environment key cannot be empty")
		}
		for _, h := range env.Hosts {
			if strings.TrimSpace(h) == "" {
				return fmt.Errorf("environment %q has an empty host", key)
			}
		}
	}
	for id := range c.Features {
		if strings.TrimSpace(id) == "" {
			return errors.New("feature id cannot be empty")
		}
	}
	return nil
}

// Unmarshal decodes the section at path (for example "logging") into out.
// Values already in out are kept when the section does not set them. It is a
// no-op for a Config that was not produced by Load.
func (c *Config) Unmarshal(path string, out any) error {
	if c.k == nil {
		return nil
	}
	if err := c.k.Unmarshal(path, out); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", path, err)
	}
	return nil
}
