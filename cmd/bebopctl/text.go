package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/bebop/pkg/strutil"
)

var (
	slugSeparator  string
	markdownOpts   strutil.MarkdownOptions
	controlsSource string
)

func init() {
	slugifyCmd.Flags().StringVar(&slugSeparator, "sep", strutil.DefaultSlugSeparator, "replacement for spaces")
	markdownCmd.Flags().BoolVar(&markdownOpts.FixPunctuation, "fix-punctuation", false, "use typographic quotes and dashes")
	markdownCmd.Flags().BoolVar(&markdownOpts.Emoji, "emoji", false, "expand :shortcodes:")
	markdownCmd.Flags().BoolVar(&markdownOpts.Sanitize, "sanitize", false, "strip unsafe HTML")
	controlsCmd.Flags().StringVarP(&controlsSource, "file", "f", "-", "HTML file to read, - for stdin")

	rootCmd.AddCommand(slugifyCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(controlsCmd)
}

var slugifyCmd = &cobra.Command{
	Use:   "slugify TEXT...",
	Short: "Turn text into a slug",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), strutil.Slugify(strings.Join(args, " "), slugSeparator))
		return nil
	},
}

var markdownCmd = &cobra.Command{
	Use:   "markdown [FILE]",
	Short: "Render markdown to HTML",
	Long: `Render a markdown file, or stdin when FILE is omitted or "-", to HTML.
Tables, task lists, footnotes and definition lists are supported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := "-"
		if len(args) == 1 {
			src = args[0]
		}
		content, err := readSource(cmd, src)
		if err != nil {
			return err
		}
		out, err := strutil.ParseMarkdown(string(content), markdownOpts)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List the form control names found in HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readSource(cmd, controlsSource)
		if err != nil {
			return err
		}
		names, err := strutil.ControlNames(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		})
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func readSource(cmd *cobra.Command, src string) ([]byte, error) {
	if src == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", src, err)
	}
	return content, nil
}
