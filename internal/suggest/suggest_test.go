package suggest

import (
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *corpus.Snapshot {
	return corpus.NewSnapshot([]*models.SearchableDocument{
		{ID: "1", Type: models.TypeWork, Title: "Maison Tropicale", Keywords: []string{"tropicalArchitecture", "aluminium"}, Metadata: models.WorkMetadata{}},
		{ID: "2", Type: models.TypeWork, Title: "Maisons de Meudon", Keywords: []string{"Aluminium"}, Metadata: models.WorkMetadata{}},
		{ID: "3", Type: models.TypeWork, Title: "La Maison du Peuple", Metadata: models.WorkMetadata{}},
		{ID: "4", Type: models.TypeScholar, Title: "Ana Maison", Keywords: []string{"maisonHistory"}, Metadata: models.ScholarMetadata{Name: "Ana Maison"}},
		{ID: "5", Type: models.TypeWork, Title: "Maison des Jours Meilleurs", Metadata: models.WorkMetadata{}},
		{ID: "6", Type: models.TypeWork, Title: "Maison Prouvé", Metadata: models.WorkMetadata{}},
	}, corpus.Labels{})
}

func TestSuggest_PrefixFirstThenSubstring(t *testing.T) {
	s := New(testSnapshot(), WithMaxSuggestions(10))
	got := s.Suggest("MAISON")
	assert.Equal(t, []string{
		"Maison des Jours Meilleurs",
		"Maison Prouvé",
		"Maison Tropicale",
		"maisonHistory",
		"Maisons de Meudon",
		"Ana Maison",
		"La Maison du Peuple",
	}, got)
}

func TestSuggest_Cap(t *testing.T) {
	s := New(testSnapshot())
	got := s.Suggest("maison")
	assert.Len(t, got, DefaultMaxSuggestions)
	assert.Equal(t, "Maison des Jours Meilleurs", got[0])
	assert.Equal(t, "Maisons de Meudon", got[4])
}

func TestSuggest_DedupesCaseInsensitively(t *testing.T) {
	s := New(testSnapshot())
	assert.Equal(t, []string{"Aluminium"}, s.Suggest("alumin"))
}

func TestSuggest_ShortInput(t *testing.T) {
	s := New(testSnapshot())
	for _, in := range []string{"", " ", "m", "  m  "} {
		got := s.Suggest(in)
		assert.NotNil(t, got)
		assert.Empty(t, got, "input %q", in)
	}
	assert.Equal(t, []string{"Maison Tropicale"}, New(testSnapshot(), WithMinLength(4)).Suggest("ropi")[:1])
	assert.Empty(t, New(testSnapshot(), WithMinLength(4)).Suggest("rop"))
}

func TestSuggest_NoMatch(t *testing.T) {
	assert.Empty(t, New(testSnapshot()).Suggest("concrete"))
}

func TestSuggest_DefaultCorpus(t *testing.T) {
	snap, err := corpus.LoadDefault()
	require.NoError(t, err)
	s := New(snap)

	got := s.Suggest("大学")
	assert.Contains(t, got, "安东尼大学城学生宿舍家具")
	assert.LessOrEqual(t, len(got), DefaultMaxSuggestions)

	seen := make(map[string]bool)
	for _, g := range got {
		assert.False(t, seen[g], "duplicate suggestion %q", g)
		seen[g] = true
	}
	assert.Equal(t, got, s.Suggest("大学"))
}
