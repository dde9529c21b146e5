package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSortOrder is returned by Validate for an unknown sort order.
var ErrInvalidSortOrder = errors.New("invalid sort order")

// SortOrder selects how search results are ordered.
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortYear      SortOrder = "year"
	SortTitle     SortOrder = "title"
	SortAuthor    SortOrder = "author"
)

// YearRange is an inclusive [Min, Max] year constraint.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year lies within the range, bounds included.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Filters are structured search constraints. Nil or empty fields impose no
// constraint; values within a field are OR-ed, fields are AND-ed.
type Filters struct {
	Types      []DocumentType `json:"type,omitempty"`
	Categories []string       `json:"category,omitempty"`
	Regions    []string       `json:"region,omitempty"`
	Year       *YearRange     `json:"year,omitempty"`
}

// Active reports whether any facet constraint is set.
func (f Filters) Active() bool {
	return len(f.Types) > 0 || len(f.Categories) > 0 || len(f.Regions) > 0 || f.Year != nil
}

// SearchQuery represents a search request with optional filters.
type SearchQuery struct {
	Term    string    `json:"term"`
	Filters Filters   `json:"filters"`
	SortBy  SortOrder `json:"sortBy,omitempty"`
}

// Validate checks the parts of a query a caller can get wrong at a transport
// boundary. An empty sort order is normalized to relevance. An empty term is
// not an error: the engine answers it with an empty result list.
func (q *SearchQuery) Validate() error {
	switch q.SortBy {
	case "":
		q.SortBy = SortRelevance
	case SortRelevance, SortYear, SortTitle, SortAuthor:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, q.SortBy)
	}
	return nil
}

// RecommendOptions controls a recommendation call. Zero MaxResults uses the
// configured default; empty IncludeTypes admits every type.
type RecommendOptions struct {
	MaxResults   int            `json:"maxResults,omitempty"`
	IncludeTypes []DocumentType `json:"includeTypes,omitempty"`
}
