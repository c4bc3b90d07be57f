package seo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Dotless ı and the dotted capital İ have no decomposition, so they are
// folded by hand before the diacritics are stripped.
var turkishFolder = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ğ", "g", "Ğ", "g",
	"ş", "s", "Ş", "s",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
)

// GenerateSlug turns a title into a lowercase, dash separated ASCII slug.
// The same title always yields the same slug.
func GenerateSlug(title string) string {
	s := turkishFolder.Replace(title)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
