// Package textfold normalizes human names into ASCII identifiers for
// usernames, mailbox local parts and domains.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that carry no combining mark and survive NFD unchanged
var stroked = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ß", "ss",
)

// StripAccents removes diacritics, turning "Łukasz Żółć" into "Lukasz Zolc".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// transform only fails on malformed input; keep what we have
		out = s
	}
	return stroked.Replace(out)
}

// Fold lower-cases s and strips its accents.
func Fold(s string) string {
	return strings.ToLower(StripAccents(s))
}

// Compact folds s and drops everything that is not an ASCII letter or digit.
func Compact(s string) string {
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
