// Package filter derives the facet catalogue of a corpus snapshot and
// evaluates structured search filters against documents.
package filter

import (
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// Match reports whether doc satisfies every active facet of f. Values within
// a facet are alternatives. A document lacking the attribute of an active
// facet does not match it.
func Match(doc *models.SearchableDocument, f models.Filters) bool {
	if len(f.Types) > 0 && !containsType(f.Types, doc.Type) {
		return false
	}
	if len(f.Categories) > 0 {
		c, ok := models.CategoryOf(doc.Metadata)
		if !ok || !contains(f.Categories, c) {
			return false
		}
	}
	if len(f.Regions) > 0 {
		r, ok := models.RegionOf(doc.Metadata)
		if !ok || !contains(f.Regions, r) {
			return false
		}
	}
	if f.Year != nil {
		y, ok := models.YearOf(doc.Metadata)
		if !ok || !f.Year.Contains(y) {
			return false
		}
	}
	return true
}

func containsType(types []models.DocumentType, t models.DocumentType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
