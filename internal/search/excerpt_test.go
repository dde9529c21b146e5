package search

import "testing"

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pos      int
		matchLen int
		maxLen   int
		want     string
	}{
		{"short text unchanged", "short", 0, 1, 10, "short"},
		{"zero max unchanged", "abcdefghij", 5, 1, 0, "abcdefghij"},
		{"centred", "abcdefghij", 5, 1, 4, "...defg..."},
		{"clamped to start", "abcdefghij", 0, 1, 4, "abcd..."},
		{"clamped to end", "abcdefghij", 9, 1, 4, "...ghij"},
		{"multibyte runes", "一二三四五六七八九十", 4, 2, 4, "...四五六七..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.text, tt.pos, tt.matchLen, tt.maxLen); got != tt.want {
				t.Errorf("Excerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}
