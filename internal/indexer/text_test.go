package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a \n\t b   c  "))
	// "é" as e + combining acute composes to the single code point.
	assert.Equal(t, "Prouv\u00e9", Normalize("Prouve\u0301"))
	assert.Equal(t, "", Normalize("   "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "maison tropicale", Fold("Maison TROPICALE"))
	assert.Equal(t, "热带屋", Fold("热带屋"))
	assert.Equal(t, Fold("Prouve\u0301"), Fold("PROUV\u00c9"))
	s := "ÉCOLE Nancy"
	assert.Equal(t, len([]rune(s)), len([]rune(Fold(s))), "folding must preserve rune count")
}

func TestCountHits(t *testing.T) {
	tests := []struct {
		field, term string
		want        int
	}{
		{"maison maison", "maison", 2},
		{"aaaa", "aa", 2},
		{"热带屋热带", "热带", 2},
		{"anything", "", 0},
		{"", "x", 0},
		{"abc", "d", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountHits(tt.field, tt.term), "CountHits(%q, %q)", tt.field, tt.term)
	}
}

func TestRuneIndex(t *testing.T) {
	assert.Equal(t, 2, RuneIndex("让·普鲁维", "普鲁维"))
	assert.Equal(t, 0, RuneIndex("abc", "a"))
	assert.Equal(t, -1, RuneIndex("abc", "z"))
	assert.Equal(t, -1, RuneIndex("abc", ""))
}
