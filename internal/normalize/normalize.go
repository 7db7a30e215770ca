// Package normalize cleans user supplied strings before validation and
// storage.
package normalize

import (
	"html"
	"strings"
	"unicode"
)

// Email returns a normalized form of an email address suitable for
// storage and comparisons. Normalization currently trims surrounding
// whitespace and lower-cases the address.
func Email(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Line trims a single-line field and collapses inner runs of whitespace.
func Line(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Text trims a multi-line field, drops control characters other than
// newlines and tabs, and escapes HTML so it can be rendered as-is.
func Text(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	return html.EscapeString(s)
}
