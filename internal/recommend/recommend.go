// Package recommend finds documents related to a source document and
// explains each match with the factor that contributed most to it.
package recommend

import (
	"sort"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/ranking"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
	"go.uber.org/zap"
)

// DefaultMaxResults is used when a call does not set MaxResults.
const DefaultMaxResults = 6

// Engine computes recommendations against one immutable snapshot.
type Engine struct {
	snap       *corpus.Snapshot
	ranker     *ranking.Ranker
	profiles   map[*models.SearchableDocument]*ranking.Profile
	defaultMax int
	logger     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultMaxResults sets the result cap used when a call sets none.
func WithDefaultMaxResults(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultMax = n
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a recommendation engine over snap. A nil ranker uses
// the default weights.
func NewEngine(snap *corpus.Snapshot, ranker *ranking.Ranker, opts ...Option) *Engine {
	if ranker == nil {
		ranker = ranking.NewRanker(nil)
	}
	e := &Engine{
		snap:       snap,
		ranker:     ranker,
		profiles:   make(map[*models.SearchableDocument]*ranking.Profile, snap.Len()),
		defaultMax: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = utils.OrNop(e.logger)
	for _, doc := range snap.Documents() {
		e.profiles[doc] = ranking.ProfileOf(doc)
	}
	return e
}

// Recommend returns the documents most related to the source identified by
// (sourceType, sourceID), best first. An unknown source yields an empty list.
// The source itself and zero-score candidates are never returned.
func (e *Engine) Recommend(sourceType models.DocumentType, sourceID string, opts models.RecommendOptions) []models.RecommendationItem {
	src, ok := e.snap.Lookup(sourceType, sourceID)
	if !ok {
		e.logger.Debug("recommendation source not found",
			zap.String("type", string(sourceType)), zap.String("id", sourceID))
		return []models.RecommendationItem{}
	}
	limit := opts.MaxResults
	if limit <= 0 {
		limit = e.defaultMax
	}

	srcProfile := e.profiles[src]
	items := make([]models.RecommendationItem, 0)
	for _, cand := range e.snap.Documents() {
		if cand.ID == src.ID || !allowed(opts.IncludeTypes, cand.Type) {
			continue
		}
		b := e.ranker.Similarity(srcProfile, e.profiles[cand])
		factor, ok := b.Dominant()
		if !ok {
			continue
		}
		items = append(items, models.RecommendationItem{
			ID:             cand.ID,
			Type:           cand.Type,
			Title:          cand.Title,
			Excerpt:        cand.Summary,
			RelevanceScore: b.Score(),
			Reason:         factor.Reason(),
			Metadata:       cand.Metadata,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].RelevanceScore != items[j].RelevanceScore {
			return items[i].RelevanceScore > items[j].RelevanceScore
		}
		return items[i].ID < items[j].ID
	})
	if len(items) > limit {
		items = items[:limit]
	}

	e.logger.Debug("recommendations computed",
		zap.String("type", string(sourceType)),
		zap.String("id", sourceID),
		zap.Int("results", len(items)),
	)
	return items
}

func allowed(types []models.DocumentType, t models.DocumentType) bool {
	if len(types) == 0 {
		return true
	}
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}
