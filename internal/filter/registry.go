package filter

import (
	"sort"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// Default year range reported when no document carries a year: Prouvé's
// lifetime.
const (
	DefaultYearMin = 1901
	DefaultYearMax = 1984
)

// Registry holds the facet catalogue of one snapshot. Counts always cover
// the whole corpus, independent of any active filter.
type Registry struct {
	facets models.Facets
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	yearMin, yearMax int
}

// WithDefaultYearRange sets the year range reported for a corpus without
// dated documents. Invalid ranges are ignored.
func WithDefaultYearRange(min, max int) Option {
	return func(o *options) {
		if min > 0 && max >= min {
			o.yearMin, o.yearMax = min, max
		}
	}
}

// NewRegistry computes the facets of snap.
func NewRegistry(snap *corpus.Snapshot, opts ...Option) *Registry {
	o := options{yearMin: DefaultYearMin, yearMax: DefaultYearMax}
	for _, opt := range opts {
		opt(&o)
	}

	typeCounts := make(map[models.DocumentType]int)
	categoryCounts := make(map[string]int)
	regionCounts := make(map[string]int)
	yearMin, yearMax, dated := 0, 0, false

	for _, doc := range snap.Documents() {
		typeCounts[doc.Type]++
		if c, ok := models.CategoryOf(doc.Metadata); ok {
			categoryCounts[c]++
		}
		if r, ok := models.RegionOf(doc.Metadata); ok {
			regionCounts[r]++
		}
		if y, ok := models.YearOf(doc.Metadata); ok {
			if !dated || y < yearMin {
				yearMin = y
			}
			if !dated || y > yearMax {
				yearMax = y
			}
			dated = true
		}
	}
	if !dated {
		yearMin, yearMax = o.yearMin, o.yearMax
	}

	facets := models.Facets{
		Types:      make([]models.FilterFacet, 0, len(typeCounts)),
		Categories: valueFacets(categoryCounts, snap.CategoryLabel),
		Regions:    valueFacets(regionCounts, snap.RegionLabel),
		YearRange:  [2]int{yearMin, yearMax},
	}
	for _, t := range models.AllTypes {
		if n := typeCounts[t]; n > 0 {
			facets.Types = append(facets.Types, models.FilterFacet{ID: string(t), Name: string(t), Count: n})
		}
	}
	return &Registry{facets: facets}
}

// Facets returns a copy of the facet catalogue.
func (r *Registry) Facets() models.Facets {
	f := r.facets
	f.Types = clone(f.Types)
	f.Categories = clone(f.Categories)
	f.Regions = clone(f.Regions)
	return f
}

func clone(in []models.FilterFacet) []models.FilterFacet {
	out := make([]models.FilterFacet, len(in))
	copy(out, in)
	return out
}

func valueFacets(counts map[string]int, label func(string) string) []models.FilterFacet {
	out := make([]models.FilterFacet, 0, len(counts))
	for id, n := range counts {
		out = append(out, models.FilterFacet{ID: id, Name: label(id), Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
