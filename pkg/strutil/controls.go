package strutil

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	emptyBrackets = regexp.MustCompile(`\[\]`)
	keyBrackets   = regexp.MustCompile(`\[[^\]]+\]`)
)

// ControlNames runs render and returns the base names of the form controls
// it writes. Array suffixes are dropped, so "items[]" and "meta[color]"
// yield "items" and "meta". Inputs come first, then selects, then
// textareas; duplicates are removed.
func ControlNames(render func(w io.Writer) error) ([]string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, fmt.Errorf("render controls: %w", err)
	}
	if strings.TrimSpace(buf.String()) == "" {
		return nil, nil
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse controls: %w", err)
	}

	byTag := map[atom.Atom][]string{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Input, atom.Select, atom.Textarea:
				if name := attr(n, "name"); name != "" {
					byTag[n.DataAtom] = append(byTag[n.DataAtom], baseName(name))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var names []string
	for _, tag := range []atom.Atom{atom.Input, atom.Select, atom.Textarea} {
		for _, name := range byTag[tag] {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func baseName(name string) string {
	name = emptyBrackets.ReplaceAllString(name, "")
	return keyBrackets.ReplaceAllString(name, "")
}
