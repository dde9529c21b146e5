package corpus

import (
	"sort"
	"time"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/google/uuid"
)

type docKey struct {
	t  models.DocumentType
	id string
}

// Snapshot is an immutable corpus of searchable documents together with its
// derived field index. A snapshot is never modified after NewSnapshot
// returns; a reload builds a new one.
type Snapshot struct {
	version  string
	loadedAt time.Time
	docs     []*models.SearchableDocument
	byKey    map[docKey]*models.SearchableDocument
	labels   Labels
	index    *indexer.Index
}

// NewSnapshot builds a snapshot from docs, which must have unique IDs.
func NewSnapshot(docs []*models.SearchableDocument, labels Labels) *Snapshot {
	sorted := append([]*models.SearchableDocument(nil), docs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byKey := make(map[docKey]*models.SearchableDocument, len(sorted))
	for _, d := range sorted {
		byKey[docKey{d.Type, d.ID}] = d
	}
	return &Snapshot{
		version:  uuid.New().String(),
		loadedAt: time.Now(),
		docs:     sorted,
		byKey:    byKey,
		labels:   labels,
		index:    indexer.NewIndex(sorted),
	}
}

// Documents returns all documents ordered by ID. The slice is shared and
// must not be modified.
func (s *Snapshot) Documents() []*models.SearchableDocument {
	return s.docs
}

// Lookup resolves a document by type and ID.
func (s *Snapshot) Lookup(t models.DocumentType, id string) (*models.SearchableDocument, bool) {
	d, ok := s.byKey[docKey{t, id}]
	return d, ok
}

// Index returns the derived field index.
func (s *Snapshot) Index() *indexer.Index {
	return s.index
}

// Len returns the number of documents.
func (s *Snapshot) Len() int {
	return len(s.docs)
}

// CountByType returns the number of documents of each type present.
func (s *Snapshot) CountByType() map[models.DocumentType]int {
	counts := make(map[models.DocumentType]int)
	for _, d := range s.docs {
		counts[d.Type]++
	}
	return counts
}

// Version identifies this load of the corpus.
func (s *Snapshot) Version() string {
	return s.version
}

// LoadedAt returns when the snapshot was built. Diagnostic only.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// CategoryLabel returns the display name of a category, falling back to its ID.
func (s *Snapshot) CategoryLabel(id string) string {
	if name := s.labels.Categories[id]; name != "" {
		return name
	}
	return id
}

// RegionLabel returns the display name of a region, falling back to its ID.
func (s *Snapshot) RegionLabel(id string) string {
	if name := s.labels.Regions[id]; name != "" {
		return name
	}
	return id
}
