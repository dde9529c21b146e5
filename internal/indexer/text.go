package indexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares source text for indexing: NFC composition (so composed
// and decomposed accents compare equal), trimmed, whitespace runs collapsed.
func Normalize(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	var b strings.Builder
	b.Grow(len(text))
	wasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !wasSpace {
				b.WriteRune(' ')
				wasSpace = true
			}
		} else {
			b.WriteRune(r)
			wasSpace = false
		}
	}
	return b.String()
}

// Fold returns the case-insensitive matching form of s. Each rune maps to
// exactly one rune, so a rune offset in Fold(s) is the same offset in s when
// s is already NFC.
func Fold(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(unicode.ToLower, s)
}

// CountHits counts non-overlapping occurrences of the folded term in the
// folded field. An empty term never matches.
func CountHits(field, term string) int {
	if term == "" || field == "" {
		return 0
	}
	return strings.Count(field, term)
}

// RuneIndex returns the rune offset of the first occurrence of term in s, or -1.
func RuneIndex(s, term string) int {
	if term == "" {
		return -1
	}
	i := strings.Index(s, term)
	if i < 0 {
		return -1
	}
	return len([]rune(s[:i]))
}
