package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/bebop/internal/config"
)

var errPathNotFound = errors.New("path not found")

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(watchCmd)
}

// getCmd prints the values at one or more paths
var getCmd = &cobra.Command{
	Use:   "get FILE PATH...",
	Short: "Print the value at a path",
	Long: `Print the value stored at PATH in FILE. Maps are printed as JSON.
With several paths the values are gathered into one nested map.

Examples:
  # Read a nested value
  bebopctl get site.yaml theme.colors.primary

  # Read a key that contains dots
  bebopctl get --flat site.yaml wp.uploads

  # Gather several values
  bebopctl get site.yaml theme.name theme.version`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGet,
}

var keysCmd = &cobra.Command{
	Use:   "keys FILE [PATH]",
	Short: "List the keys of the map at a path",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runKeys,
}

var countCmd = &cobra.Command{
	Use:   "count FILE [PATH]",
	Short: "Count the entries of the map at a path",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCount,
}

// setCmd writes a value and prints the resulting document
var setCmd = &cobra.Command{
	Use:   "set FILE PATH VALUE",
	Short: "Print the document with a value written at a path",
	Long: `Write VALUE at PATH and print the resulting document as JSON. FILE is not
modified. VALUE is parsed as YAML, so numbers, booleans, lists and maps keep
their type.

Examples:
  bebopctl set site.yaml theme.colors.primary '#336699'
  bebopctl set site.yaml features.blocks '[gallery, quote]'`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE PATH",
	Short: "Print the value at a path each time the file changes",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatch,
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	paths := args[1:]
	if len(paths) > 1 {
		out, err := formatValue(c.GetList(paths))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	v, ok := c.Lookup(paths[0])
	if !ok {
		return fmt.Errorf("%w: %s", errPathNotFound, paths[0])
	}
	out, err := formatValue(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runKeys(cmd *cobra.Command, args []string) error {
	c, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	path := optionalPath(args)
	keys := c.Keys(path)
	if keys == nil {
		return fmt.Errorf("%w: %s is not a map", errPathNotFound, path)
	}
	for _, k := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), k.String())
	}
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	c, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	n, _ := c.Count(optionalPath(args))
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	c, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[2])
	if err != nil {
		return err
	}
	out, err := formatValue(c.SetPath(args[1], v).GetAll())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	file, path := args[0], args[1]
	printValue := func(string) {
		c, err := loadDocument(file)
		if err != nil {
			cmd.PrintErrln(err)
			return
		}
		out, err := formatValue(c.GetPath(path))
		if err != nil {
			cmd.PrintErrln(err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	printValue(file)
	logger := zap.NewNop()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := newLogger(cfg)
		if err != nil {
			return err
		}
		logger = l.Underlying()
	}
	return config.Watch(ctx, file, logger, printValue)
}

func optionalPath(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
