package search

import (
	"sort"
	"strings"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// Sort orders hits in place by order, ties broken by ID ascending. An unknown
// order sorts by relevance.
func Sort(hits []Hit, order models.SortOrder) {
	var primary func(a, b *Hit) int
	switch order {
	case models.SortYear:
		primary = byYear
	case models.SortTitle:
		primary = func(a, b *Hit) int { return strings.Compare(indexer.Fold(a.Title), indexer.Fold(b.Title)) }
	case models.SortAuthor:
		primary = func(a, b *Hit) int { return strings.Compare(authorKey(a), authorKey(b)) }
	default:
		primary = byRelevance
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if c := primary(&hits[i], &hits[j]); c != 0 {
			return c < 0
		}
		return hits[i].ID < hits[j].ID
	})
}

func byRelevance(a, b *Hit) int {
	switch {
	case a.RelevanceScore > b.RelevanceScore:
		return -1
	case a.RelevanceScore < b.RelevanceScore:
		return 1
	}
	return 0
}

// byYear sorts newest first; undated documents go last.
func byYear(a, b *Hit) int {
	ya, okA := models.YearOf(a.Metadata)
	yb, okB := models.YearOf(b.Metadata)
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case ya > yb:
		return -1
	case ya < yb:
		return 1
	}
	return 0
}

func authorKey(h *Hit) string {
	if a, ok := models.AuthorOf(h.Metadata); ok {
		return indexer.Fold(a)
	}
	return indexer.Fold(h.Title)
}
