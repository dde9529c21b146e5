package corpus

import (
	"strings"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
	"go.uber.org/zap"
)

const defaultSummaryLength = 120

// Loader maps content entities into searchable documents.
type Loader struct {
	logger        *zap.Logger
	summaryLength int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a logger for debug output (skipped records).
func WithLogger(l *zap.Logger) LoaderOption {
	return func(ld *Loader) { ld.logger = l }
}

// WithSummaryLength sets the rune length of fallback summaries.
func WithSummaryLength(n int) LoaderOption {
	return func(ld *Loader) {
		if n > 0 {
			ld.summaryLength = n
		}
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...LoaderOption) *Loader {
	ld := &Loader{
		logger:        zap.NewNop(),
		summaryLength: defaultSummaryLength,
	}
	for _, opt := range opts {
		opt(ld)
	}
	ld.logger = utils.OrNop(ld.logger)
	return ld
}

// Load normalizes content into a snapshot. Records missing an id or title and
// records whose id is already taken are skipped; they are simply absent from
// the snapshot.
func (ld *Loader) Load(content *Content) *Snapshot {
	if content == nil {
		content = &Content{}
	}
	docs := make([]*models.SearchableDocument, 0, len(content.Works)+len(content.Scholars)+len(content.Biography))
	seen := make(map[string]struct{})
	add := func(doc *models.SearchableDocument) {
		if doc == nil {
			return
		}
		if _, dup := seen[doc.ID]; dup {
			ld.logger.Debug("skipping duplicate document id", zap.String("id", doc.ID), zap.String("type", string(doc.Type)))
			return
		}
		seen[doc.ID] = struct{}{}
		docs = append(docs, doc)
	}

	for i := range content.Works {
		add(ld.mapWork(&content.Works[i]))
	}
	for i := range content.Scholars {
		add(ld.mapScholar(&content.Scholars[i]))
	}
	for i := range content.Biography {
		add(ld.mapBiography(&content.Biography[i]))
	}

	ld.logger.Debug("corpus loaded",
		zap.Int("documents", len(docs)),
		zap.Int("works", len(content.Works)),
		zap.Int("scholars", len(content.Scholars)),
		zap.Int("biography_sections", len(content.Biography)),
	)
	return NewSnapshot(docs, content.Labels)
}

func (ld *Loader) mapWork(w *Work) *models.SearchableDocument {
	id, title := strings.TrimSpace(w.ID), indexer.Normalize(w.Title)
	if id == "" || title == "" {
		ld.skip(models.TypeWork, id)
		return nil
	}
	body := indexer.Normalize(w.Description)
	category := strings.TrimSpace(w.Category)
	keywords := normalizeAll(w.Tags)
	if category != "" && !containsFold(keywords, category) {
		keywords = append(keywords, category)
	}
	return &models.SearchableDocument{
		ID:       id,
		Type:     models.TypeWork,
		Title:    title,
		Body:     body,
		Keywords: keywords,
		Summary:  ld.summary(w.Excerpt, body, title),
		Metadata: models.WorkMetadata{
			Year:      w.Year,
			Location:  indexer.Normalize(w.Location),
			Category:  category,
			Architect: indexer.Normalize(w.Architect),
		},
		SourceRef: "works/" + id,
	}
}

func (ld *Loader) mapScholar(s *Scholar) *models.SearchableDocument {
	id, name := strings.TrimSpace(s.ID), indexer.Normalize(s.Name)
	if id == "" || name == "" {
		ld.skip(models.TypeScholar, id)
		return nil
	}
	bio := indexer.Normalize(s.Biography)
	parts := append([]string{bio}, s.Publications...)
	body := indexer.Normalize(strings.Join(parts, " "))
	focus := normalizeAll(s.Specialization)
	keywords := append([]string(nil), focus...)
	for _, tag := range normalizeAll(s.Tags) {
		if !containsFold(keywords, tag) {
			keywords = append(keywords, tag)
		}
	}
	return &models.SearchableDocument{
		ID:       id,
		Type:     models.TypeScholar,
		Title:    name,
		Body:     body,
		Keywords: keywords,
		Summary:  ld.summary(s.Excerpt, bio, name),
		Metadata: models.ScholarMetadata{
			Name:           name,
			Institution:    indexer.Normalize(s.Institution),
			Region:         strings.TrimSpace(s.Region),
			Country:        indexer.Normalize(s.Country),
			Specialization: focus,
		},
		SourceRef: "scholars/" + id,
	}
}

func (ld *Loader) mapBiography(b *BiographySection) *models.SearchableDocument {
	key, title := strings.TrimSpace(b.Key), indexer.Normalize(b.Title)
	if key == "" || title == "" {
		ld.skip(models.TypeBiography, key)
		return nil
	}
	body := indexer.Normalize(b.Content)
	return &models.SearchableDocument{
		ID:       key,
		Type:     models.TypeBiography,
		Title:    title,
		Body:     body,
		Keywords: normalizeAll(b.Keywords),
		Summary:  ld.summary(b.Excerpt, body, title),
		Metadata: models.BiographyMetadata{
			Section: key,
			Period:  indexer.Normalize(b.Period),
		},
		SourceRef: "biography/" + key,
	}
}

// summary picks the display summary: the supplied excerpt, else a truncation
// of the descriptive text, else of the title.
func (ld *Loader) summary(excerpt, text, title string) string {
	if s := indexer.Normalize(excerpt); s != "" {
		return s
	}
	if text != "" {
		return utils.Truncate(text, ld.summaryLength)
	}
	return utils.Truncate(title, ld.summaryLength)
}

func (ld *Loader) skip(t models.DocumentType, id string) {
	ld.logger.Debug("skipping malformed record", zap.String("type", string(t)), zap.String("id", id))
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = indexer.Normalize(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// LoadDefault builds a snapshot from the embedded content.
func LoadDefault(opts ...LoaderOption) (*Snapshot, error) {
	content, err := DefaultContent()
	if err != nil {
		return nil, err
	}
	return NewLoader(opts...).Load(content), nil
}

// LoadFile builds a snapshot from the content file at path.
func LoadFile(path string, opts ...LoaderOption) (*Snapshot, error) {
	content, err := LoadContentFile(path)
	if err != nil {
		return nil, err
	}
	return NewLoader(opts...).Load(content), nil
}
