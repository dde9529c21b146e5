// Package search runs filtered, ranked free-text queries over a corpus snapshot.
package search

import (
	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/filter"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/ranking"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
	"go.uber.org/zap"
)

// DefaultExcerptLength is the excerpt window in runes.
const DefaultExcerptLength = 160

// Engine answers search queries against one immutable snapshot.
type Engine struct {
	snap          *corpus.Snapshot
	ranker        *ranking.Ranker
	excerptLength int
	logger        *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithExcerptLength sets the excerpt window in runes.
func WithExcerptLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.excerptLength = n
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a search engine over snap. A nil ranker uses the default
// weights.
func NewEngine(snap *corpus.Snapshot, ranker *ranking.Ranker, opts ...Option) *Engine {
	if ranker == nil {
		ranker = ranking.NewRanker(nil)
	}
	e := &Engine{
		snap:          snap,
		ranker:        ranker,
		excerptLength: DefaultExcerptLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = utils.OrNop(e.logger)
	return e
}

// Hit is one search result together with the field hits that produced its
// score.
type Hit struct {
	models.SearchResult
	Hits indexer.FieldHits `json:"hits"`
}

// Search returns the complete, sorted set of documents that pass the filters
// and match the term. A blank term yields an empty list.
func (e *Engine) Search(query models.SearchQuery) []models.SearchResult {
	hits := e.SearchWithBreakdown(query)
	results := make([]models.SearchResult, len(hits))
	for i := range hits {
		results[i] = hits[i].SearchResult
	}
	return results
}

// SearchWithBreakdown is Search with the per-field hit counts of each result.
func (e *Engine) SearchWithBreakdown(query models.SearchQuery) []Hit {
	term := indexer.Fold(indexer.Normalize(query.Term))
	if term == "" {
		return []Hit{}
	}

	idx := e.snap.Index()
	hits := make([]Hit, 0)
	for _, doc := range e.snap.Documents() {
		if !filter.Match(doc, query.Filters) {
			continue
		}
		fields := idx.Fields(doc)
		fh := fields.Hits(term)
		if fh.Total() == 0 {
			continue
		}
		hits = append(hits, Hit{
			SearchResult: models.SearchResult{
				ID:             doc.ID,
				Type:           doc.Type,
				Title:          doc.Title,
				Excerpt:        e.excerpt(doc, fields, term),
				RelevanceScore: e.ranker.Score(fh),
				Metadata:       doc.Metadata,
			},
			Hits: fh,
		})
	}
	Sort(hits, query.SortBy)

	e.logger.Debug("search completed",
		zap.String("term", term),
		zap.String("sort", string(query.SortBy)),
		zap.Bool("filtered", query.Filters.Active()),
		zap.Int("results", len(hits)),
	)
	return hits
}

func (e *Engine) excerpt(doc *models.SearchableDocument, fields *indexer.Fields, term string) string {
	if doc.Body == "" {
		return doc.Summary
	}
	pos := indexer.RuneIndex(fields.Body, term)
	if pos < 0 {
		return utils.Truncate(doc.Body, e.excerptLength)
	}
	return Excerpt(doc.Body, pos, len([]rune(term)), e.excerptLength)
}
