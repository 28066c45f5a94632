package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/bebop/pkg/locations"
)

func init() {
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(urlsCmd)
	rootCmd.AddCommand(envCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths [KEY [RELATIVE]]",
	Short: "Show the filesystem locations of the site",
	Long: `Show the filesystem locations derived from the site configuration. With a
KEY only that location is printed, joined with RELATIVE when given.

Examples:
  bebopctl --config site.yaml paths
  bebopctl --config site.yaml paths theme assets/main.css`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKit()
		if err != nil {
			return err
		}
		return printLocations(cmd.OutOrStdout(), k.Paths, args)
	},
}

var urlsCmd = &cobra.Command{
	Use:   "urls [KEY [RELATIVE]]",
	Short: "Show the URLs of the site",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKit()
		if err != nil {
			return err
		}
		return printLocations(cmd.OutOrStdout(), k.URLs, args)
	},
}

// envCmd prints the environments and marks the current one
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the configured environments",
	Long: `Show every environment with its hosts. The current environment, detected
from the site server name and APP_ENV, is marked with "*".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKit()
		if err != nil {
			return err
		}
		current := k.Envs.CurrentKey()
		w := cmd.OutOrStdout()
		for _, key := range k.Envs.Keys() {
			marker := " "
			if key == current {
				marker = "*"
			}
			hosts := strings.Join(k.Envs.Get(key).Hosts(), ",")
			fmt.Fprintf(w, "%s %s\t%s\n", marker, key, hosts)
		}
		return nil
	},
}

func printLocations(w io.Writer, r *locations.Registry, args []string) error {
	if len(args) == 0 {
		for _, key := range r.Keys() {
			v, _ := r.Get(key)
			fmt.Fprintf(w, "%s\t%s\n", key, v)
		}
		return nil
	}
	v, ok := r.Get(args[0], args[1:]...)
	if !ok {
		return fmt.Errorf("%w: %s", errPathNotFound, args[0])
	}
	fmt.Fprintln(w, v)
	return nil
}
