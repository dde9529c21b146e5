// Package indexer derives the weighted searchable fields of each document.
package indexer

import (
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// Fields holds the folded, match-ready fields of one document.
type Fields struct {
	Title    string
	Body     string
	Keywords []string
}

// FieldHits is the per-field hit count of a term against one document.
type FieldHits struct {
	Title   int `json:"title"`
	Body    int `json:"body"`
	Keyword int `json:"keyword"`
}

// Total returns the number of hits across all fields.
func (h FieldHits) Total() int {
	return h.Title + h.Body + h.Keyword
}

// Hits counts non-overlapping occurrences of the folded term in each field.
func (f *Fields) Hits(term string) FieldHits {
	hits := FieldHits{
		Title: CountHits(f.Title, term),
		Body:  CountHits(f.Body, term),
	}
	for _, kw := range f.Keywords {
		hits.Keyword += CountHits(kw, term)
	}
	return hits
}

// Derive builds the folded fields of doc.
func Derive(doc *models.SearchableDocument) *Fields {
	kws := make([]string, len(doc.Keywords))
	for i, kw := range doc.Keywords {
		kws[i] = Fold(kw)
	}
	return &Fields{
		Title:    Fold(doc.Title),
		Body:     Fold(doc.Body),
		Keywords: kws,
	}
}

// Index maps document IDs to their derived fields. It is built once per
// corpus snapshot and only read afterwards.
type Index struct {
	fields map[string]*Fields
}

// NewIndex derives fields for every document in docs.
func NewIndex(docs []*models.SearchableDocument) *Index {
	idx := &Index{fields: make(map[string]*Fields, len(docs))}
	for _, doc := range docs {
		idx.fields[doc.ID] = Derive(doc)
	}
	return idx
}

// Fields returns the derived fields of the document with the given ID.
// Documents unknown to the index are derived on the fly.
func (idx *Index) Fields(doc *models.SearchableDocument) *Fields {
	if f, ok := idx.fields[doc.ID]; ok {
		return f
	}
	return Derive(doc)
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.fields)
}
