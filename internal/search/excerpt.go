package search

import "github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"

// Excerpt returns a window of at most maxLen runes of text centred on the
// match of matchLen runes at rune offset pos. Cut ends are marked with "...".
// A maxLen of 0 or less returns text unchanged.
func Excerpt(text string, pos, matchLen, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	start := pos + matchLen/2 - maxLen/2
	if start > len(runes)-maxLen {
		start = len(runes) - maxLen
	}
	if start < 0 {
		start = 0
	}
	end := start + maxLen

	out := string(runes[start:end])
	if start > 0 {
		out = utils.Ellipsis + out
	}
	if end < len(runes) {
		out += utils.Ellipsis
	}
	return out
}
