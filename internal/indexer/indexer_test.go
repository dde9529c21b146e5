package indexer

import (
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAndHits(t *testing.T) {
	doc := &models.SearchableDocument{
		ID:       "maison-tropicale",
		Type:     models.TypeWork,
		Title:    "Maison Tropicale",
		Body:     "A tropical house. The maison was shipped in parts.",
		Keywords: []string{"Maison", "prefabricatedConstruction"},
	}
	f := Derive(doc)
	assert.Equal(t, "maison tropicale", f.Title)
	assert.Equal(t, []string{"maison", "prefabricatedconstruction"}, f.Keywords)

	hits := f.Hits("maison")
	assert.Equal(t, FieldHits{Title: 1, Body: 1, Keyword: 1}, hits)
	assert.Equal(t, 3, hits.Total())
	assert.Zero(t, f.Hits("nancy").Total())
}

func TestIndex(t *testing.T) {
	docs := []*models.SearchableDocument{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
	}
	idx := NewIndex(docs)
	require.Equal(t, 2, idx.Len())
	assert.Equal(t, "alpha", idx.Fields(docs[0]).Title)

	// Unknown documents are derived on demand.
	other := &models.SearchableDocument{ID: "z", Title: "Zeta"}
	assert.Equal(t, "zeta", idx.Fields(other).Title)
	assert.Equal(t, 2, idx.Len())
}
