package filter

import (
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DefaultCorpus(t *testing.T) {
	snap, err := corpus.LoadDefault()
	require.NoError(t, err)
	f := NewRegistry(snap).Facets()

	assert.Equal(t, []models.FilterFacet{
		{ID: "work", Name: "work", Count: 12},
		{ID: "scholar", Name: "scholar", Count: 6},
		{ID: "biography", Name: "biography", Count: 6},
	}, f.Types, "only present types, canonical order")

	assert.Equal(t, []models.FilterFacet{
		{ID: "education", Name: "教育建筑", Count: 1},
		{ID: "furniture", Name: "家具", Count: 2},
		{ID: "housing", Name: "住宅", Count: 4},
		{ID: "industrial", Name: "工业建筑", Count: 1},
		{ID: "public", Name: "公共建筑", Count: 4},
	}, f.Categories)

	assert.Equal(t, []models.FilterFacet{
		{ID: "africa", Name: "非洲", Count: 1},
		{ID: "americas", Name: "美洲", Count: 1},
		{ID: "asia", Name: "亚洲", Count: 2},
		{ID: "europe", Name: "欧洲", Count: 2},
	}, f.Regions)

	assert.Equal(t, [2]int{1934, 1969}, f.YearRange)
}

func TestRegistry_NoDatedDocuments(t *testing.T) {
	snap := corpus.NewSnapshot([]*models.SearchableDocument{
		{ID: "s", Type: models.TypeScholar, Title: "S", Metadata: models.ScholarMetadata{Name: "S", Region: "mars"}},
	}, corpus.Labels{})

	f := NewRegistry(snap).Facets()
	assert.Equal(t, [2]int{DefaultYearMin, DefaultYearMax}, f.YearRange)
	assert.Equal(t, []models.FilterFacet{{ID: "mars", Name: "mars", Count: 1}}, f.Regions)
	assert.NotNil(t, f.Categories)
	assert.Empty(t, f.Categories)

	f = NewRegistry(snap, WithDefaultYearRange(1920, 1930)).Facets()
	assert.Equal(t, [2]int{1920, 1930}, f.YearRange)

	f = NewRegistry(snap, WithDefaultYearRange(1930, 1920)).Facets()
	assert.Equal(t, [2]int{DefaultYearMin, DefaultYearMax}, f.YearRange)
}

func TestRegistry_FacetsReturnsCopy(t *testing.T) {
	snap, err := corpus.LoadDefault()
	require.NoError(t, err)
	r := NewRegistry(snap)

	f := r.Facets()
	f.Types[0].Count = 999
	assert.Equal(t, 12, r.Facets().Types[0].Count)
}
