// Package utils provides shared utilities for text and logging.
package utils

import "unicode/utf8"

// Ellipsis marks text cut by Truncate.
const Ellipsis = "..."

// Truncate returns s truncated to maxLen runes, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + Ellipsis
}
