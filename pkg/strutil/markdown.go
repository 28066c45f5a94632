package strutil

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownOptions tunes ParseMarkdown.
type MarkdownOptions struct {
	// FixPunctuation turns straight quotes, dashes and ellipses into their
	// typographic forms.
	FixPunctuation bool
	// Emoji expands :shortcodes:.
	Emoji bool
	// Sanitize strips unsafe HTML from the output.
	Sanitize bool
}

// indentedHTML matches whitespace before an HTML tag at the start of a line,
// which would otherwise turn the tag into a code block.
var indentedHTML = regexp.MustCompile(`(?m)^[ \t]+<`)

// ParseMarkdown renders GitHub flavored markdown with footnotes and
// definition lists. Raw HTML is passed through unless Sanitize is set.
func ParseMarkdown(content string, opts MarkdownOptions) (string, error) {
	content = indentedHTML.ReplaceAllString(content, "<")

	exts := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
		extension.DefinitionList,
	}
	if opts.FixPunctuation {
		exts = append(exts, extension.Typographer)
	}
	if opts.Emoji {
		exts = append(exts, emoji.Emoji)
	}
	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	if opts.Sanitize {
		return bluemonday.UGCPolicy().Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}
