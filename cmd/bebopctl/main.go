// Package main implements bebopctl, a command-line tool for inspecting
// bebop configuration documents and the registries a site config produces.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fyrsmithlabs/bebop/internal/config"
	"github.com/fyrsmithlabs/bebop/internal/logging"
	"github.com/fyrsmithlabs/bebop/pkg/bebop"
	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

var (
	// configPath is the site configuration file used by paths, urls and env
	configPath string

	// flat disables dotted path addressing for document commands
	flat bool

	// separator replaces "." as the path separator
	separator string

	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bebopctl",
	Short: "Inspect bebop configuration documents and registries",
	Long: `bebopctl reads YAML, JSON and TOML documents into ordered collections and
addresses their values with dotted paths. It also shows the path, URL and
environment registries built from a site configuration.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "site configuration file (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVar(&flat, "flat", false, "treat paths as flat keys")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", collection.DefaultSeparator, "path separator")
}

// loadDocument reads path into a collection configured from the global
// flags.
func loadDocument(path string) (*collection.Collection, error) {
	c, err := config.LoadCollection(path)
	if err != nil {
		return nil, err
	}
	c.SetPathSeparator(separator)
	if flat {
		c.DisableDottedNotation()
	}
	return c, nil
}

// loadKit loads the site configuration and builds the registries from it.
func loadKit() (*bebop.Kit, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	logger.Underlying().Debug("config loaded", zap.String("path", configPath))
	return bebop.FromConfig(cfg, bebop.WithLogger(logger))
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logCfg := logging.NewDefaultConfig()
	if err := cfg.Unmarshal("logging", logCfg); err != nil {
		return nil, err
	}
	logger, err := logging.NewLogger(logCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// formatValue renders a stored value for output. Maps are printed as JSON.
func formatValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case *collection.Map:
		b, err := t.MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("failed to encode value: %w", err)
		}
		return string(b), nil
	case string:
		return t, nil
	default:
		return fmt.Sprint(t), nil
	}
}

// parseValue interprets a command-line value as YAML, so "3" is an int,
// "true" a bool and "{a: 1}" a map.
func parseValue(raw string) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	if len(node.Content) == 0 {
		return raw, nil
	}
	switch node.Content[0].Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		m := collection.NewMap()
		if err := node.Decode(m); err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", raw, err)
		}
		return m, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	return v, nil
}
