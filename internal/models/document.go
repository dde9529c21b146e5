// Package models defines core data structures for documents, queries, and search results.
package models

// DocumentType identifies the entity family a searchable document was derived from.
type DocumentType string

const (
	TypeWork        DocumentType = "work"
	TypeScholar     DocumentType = "scholar"
	TypeBiography   DocumentType = "biography"
	TypePublication DocumentType = "publication"
)

// AllTypes lists every document type in canonical display order.
var AllTypes = []DocumentType{TypeWork, TypeScholar, TypeBiography, TypePublication}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case TypeWork, TypeScholar, TypeBiography, TypePublication:
		return true
	}
	return false
}

// SearchableDocument is the unit of indexing. One is derived from each work,
// scholar, and biography section in the corpus.
type SearchableDocument struct {
	ID       string       `json:"id"`
	Type     DocumentType `json:"type"`
	Title    string       `json:"title"`
	Body     string       `json:"body"`
	Keywords []string     `json:"keywords,omitempty"`
	// Summary is shown where no query term can anchor an excerpt.
	Summary  string   `json:"summary,omitempty"`
	Metadata Metadata `json:"metadata"`
	// SourceRef points back at the original entity (e.g. "works/maison-tropicale").
	// It is carried through for navigation and never searched.
	SourceRef string `json:"source_ref"`
}
