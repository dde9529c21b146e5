package models

// SearchResult represents a single search hit. RelevanceScore is comparable
// only within the result set of one query.
type SearchResult struct {
	ID             string       `json:"id"`
	Type           DocumentType `json:"type"`
	Title          string       `json:"title"`
	Excerpt        string       `json:"excerpt"`
	RelevanceScore float64      `json:"relevanceScore"`
	Metadata       Metadata     `json:"metadata"`
}

// RecommendationItem is a related document with a short justification.
type RecommendationItem struct {
	ID             string       `json:"id"`
	Type           DocumentType `json:"type"`
	Title          string       `json:"title"`
	Excerpt        string       `json:"excerpt"`
	RelevanceScore float64      `json:"relevanceScore"`
	Reason         string       `json:"reason"`
	Metadata       Metadata     `json:"metadata"`
}

// FilterFacet is one enumerable facet value with its corpus-wide count.
type FilterFacet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Facets is the static catalogue of filter values over the whole corpus.
type Facets struct {
	Types      []FilterFacet `json:"types"`
	Categories []FilterFacet `json:"categories"`
	Regions    []FilterFacet `json:"regions"`
	YearRange  [2]int        `json:"yearRange"`
}
