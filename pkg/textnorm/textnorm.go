package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input and strips every whitespace rune.
// Used before exact-command comparison and keyword scoring so that
// "選 單" and "選單" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldDigits maps full-width digits (０-９) to their ASCII forms.
// Article references are often typed with full-width digits on mobile.
func FoldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return '0' + (r - '０')
		}
		return r
	}, s)
}
