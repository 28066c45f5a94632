package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Site.ServerName != "localhost" {
		t.Errorf("Site.ServerName = %q, want localhost", cfg.Site.ServerName)
	}
	if cfg.Site.AbsPath == "" {
		t.Error("Site.AbsPath is empty")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "bebop.yaml", `
site:
  abs_path: /srv/wp/
  home_url: https://example.com
  server_name: example.com
environments:
  staging:
    hosts: [staging.example.com]
features:
  search:
    enabled: true
    options:
      engine: native
paths:
  assets: /srv/wp/assets/
logging:
  level: debug
  sampling:
    tick: 250ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.HomeURL != "https://example.com" {
		t.Errorf("Site.HomeURL = %q", cfg.Site.HomeURL)
	}
	if cfg.Site.UploadsDir == "" {
		t.Error("defaults not kept for keys missing from the file")
	}
	if got := cfg.Environments["staging"].Hosts; len(got) != 1 || got[0] != "staging.example.com" {
		t.Errorf("staging hosts = %v", got)
	}
	if f := cfg.Features["search"]; !f.Enabled || f.Options["engine"] != "native" {
		t.Errorf("search feature = %+v", f)
	}
	if cfg.Paths["assets"] != "/srv/wp/assets/" {
		t.Errorf("Paths[assets] = %q", cfg.Paths["assets"])
	}

	var section struct {
		Level    string `koanf:"level"`
		Sampling struct {
			Tick Duration `koanf:"tick"`
		} `koanf:"sampling"`
	}
	if err := cfg.Unmarshal("logging", &section); err != nil {
		t.Fatalf("Unmarshal(logging) error = %v", err)
	}
	if section.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", section.Level)
	}
	if section.Sampling.Tick.Duration() != 250*time.Millisecond {
		t.Errorf("logging.sampling.tick = %v", section.Sampling.Tick.Duration())
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "bebop.toml", `
[site]
abs_path = "/srv/wp/"
server_name = "toml.example.com"

[environments.production]
hosts = ["example.com", "www.example.com"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Site.ServerName != "toml.example.com" {
		t.Errorf("Site.ServerName = %q", cfg.Site.ServerName)
	}
	if got := cfg.Environments["production"].Hosts; len(got) != 2 {
		t.Errorf("production hosts = %v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "bebop.yaml", "site:\n  home_url: https://file.example.com\n")
	t.Setenv("BEBOP_SITE_HOME_URL", "https://env.example.com")
	t.Setenv("BEBOP_SITE_SERVER_NAME", "env.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Site.HomeURL != "https://env.example.com" {
		t.Errorf("Site.HomeURL = %q, want env override", cfg.Site.HomeURL)
	}
	if cfg.Site.ServerName != "env.example.com" {
		t.Errorf("Site.ServerName = %q, want env override", cfg.Site.ServerName)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantMsg: "failed to open config file",
		},
		{
			name:    "unsupported extension",
			path:    func(t *testing.T) string { return writeFile(t, "bebop.ini", "a=1") },
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "directory",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantErr: ErrNotRegularFile,
		},
		{
			name: "too large",
			path: func(t *testing.T) string {
				return writeFile(t, "big.yaml", "k: "+strings.Repeat("x", maxConfigFileSize))
			},
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "invalid site",
			path:    func(t *testing.T) string { return writeFile(t, "bad.yaml", "site:\n  abs_path: \"\"\n") },
			wantMsg: "config validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"BEBOP_SITE_HOME_URL": "site.home_url",
		"BEBOP_LOGGING_LEVEL": "logging.level",
		"BEBOP_DEBUG":         "debug",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfig_UnmarshalWithoutLoad(t *testing.T) {
	out := struct{ Level string }{Level: "info"}
	if err := Default().Unmarshal("logging", &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Level != "info" {
		t.Errorf("Level = %q, want untouched", out.Level)
	}
}

func TestDuration(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v", d.Duration())
	}
	if err := d.UnmarshalText([]byte("-1s")); err == nil {
		t.Error("negative duration accepted")
	}
	b, _ := d.MarshalJSON()
	if string(b) != `"1m30s"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
}
