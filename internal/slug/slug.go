// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases the name, strips diacritics, maps the Vietnamese đ to d,
// collapses every run of non-alphanumeric characters to a single hyphen and
// trims leading/trailing hyphens. The transform is deterministic and
// idempotent: Make(Make(x)) == Make(x).
func Make(name string) string {
	s := strings.ToLower(name)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	// đ (U+0111) has no NFD decomposition, so it survives the mark strip.
	s = strings.ReplaceAll(s, "đ", "d")
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
