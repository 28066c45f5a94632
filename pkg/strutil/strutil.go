// Package strutil holds the small string and file helpers used by themes and
// plugins: identifier conversion, slugs, markdown rendering, JSON sniffing,
// asset versions and URL derivation.
package strutil

import (
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/fyrsmithlabs/bebop/pkg/site"
)

// DefaultSlugSeparator replaces spaces in Slugify when no separator is given.
const DefaultSlugSeparator = "_"

// CamelcaseToUnderscore converts "aCamelCaseName" to "a_camel_case_name".
// Runs of capitals are kept together ("HTTPServer" becomes "http_server")
// and existing underscores are preserved.
func CamelcaseToUnderscore(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 && rs[i-1] != '_' {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Slugify strips accents, lowercases s and replaces spaces with sep. An
// empty sep means DefaultSlugSeparator.
func Slugify(s, sep string) string {
	if sep == "" {
		sep = DefaultSlugSeparator
	}
	return strings.ReplaceAll(strings.ToLower(RemoveAccents(s)), " ", sep)
}

// RemoveAccents decomposes s and drops combining marks, so "mâché" becomes
// "mache".
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// IsJSON reports whether s is a JSON object or array.
func IsJSON(s string) bool {
	if !strings.HasPrefix(s, "{") && !strings.HasPrefix(s, "[") {
		return false
	}
	return gjson.Valid(s)
}

// FileVersion returns the modification time of path as a Unix timestamp,
// for cache-busting asset URLs.
func FileVersion(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.ModTime().Unix(), true
}

// PathURL maps a file under the site's content directory to its URL. The
// result is rooted at "/" when relative is true and at the home URL
// otherwise.
//
//	PathURL(s, "/var/www/wp-content/themes/x/main.css", true)
//	// "/wp-content/themes/x/main.css"
func PathURL(s site.Site, path string, relative bool) string {
	if s.AbsPath != "" {
		path = strings.ReplaceAll(path, strings.TrimRight(s.AbsPath, "/")+"/", "")
	}
	if base := contentBase(s.ContentURL); base != "" {
		re := regexp.MustCompile(".*" + regexp.QuoteMeta(base))
		path = re.ReplaceAllLiteralString(path, base)
	}
	url := "/" + strings.TrimLeft(path, "/")
	if relative {
		return url
	}
	return strings.TrimRight(s.HomeURL, "/") + url
}

func contentBase(contentURL string) string {
	contentURL = strings.TrimRight(contentURL, "/")
	if i := strings.LastIndex(contentURL, "/"); i >= 0 {
		return contentURL[i+1:]
	}
	return contentURL
}

// IsNetwork reports whether the site is a multisite network.
func IsNetwork(s site.Site) bool {
	return s.Multisite
}
