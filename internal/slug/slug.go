// Package slug turns free-form project names into package-safe identifiers.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is returned when a name has no usable characters.
const Fallback = "untitled"

// Make converts name into a lowercase hyphen slug.
//   - accented letters are folded to their base letter
//   - allowed: [a-z0-9-]
//   - whitespace, underscores and dots become hyphens
//   - all other characters are dropped
//   - repeated hyphens collapse; leading and trailing hyphens are trimmed
//
// An empty result yields Fallback.
func Make(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '_' || r == '-' || r == '.':
			b.WriteRune('-')
		}
	}

	result := strings.Trim(collapseHyphens(b.String()), "-")
	if result == "" {
		return Fallback
	}
	return result
}

// collapseHyphens replaces runs of hyphens with a single hyphen.
func collapseHyphens(s string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		if r == '-' {
			if !prevHyphen {
				b.WriteRune(r)
			}
			prevHyphen = true
			continue
		}
		prevHyphen = false
		b.WriteRune(r)
	}
	return b.String()
}
