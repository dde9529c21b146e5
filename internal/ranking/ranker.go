package ranking

import (
	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// Ranker applies the configured weights to field hits and document profiles.
type Ranker struct {
	config *RankingConfig
}

// NewRanker creates a new Ranker with the given configuration.
func NewRanker(config *RankingConfig) *Ranker {
	if config == nil {
		config = DefaultRankingConfig()
	}
	config.ApplyDefaults()
	return &Ranker{config: config}
}

// Score applies the weighted sum formula to per-field hit counts:
// Score = (Wt * title) + (Wb * body) + (Wk * keyword)
func (r *Ranker) Score(hits indexer.FieldHits) float64 {
	return r.config.TitleWeight*float64(hits.Title) +
		r.config.BodyWeight*float64(hits.Body) +
		r.config.KeywordWeight*float64(hits.Keyword)
}

// Similarity scores how related cand is to src.
func (r *Ranker) Similarity(src, cand *Profile) *Breakdown {
	b := NewBreakdown()
	if src.Type == models.TypeBiography {
		r.scoreAffinity(b, src, cand)
		return b
	}

	sameCategory := src.Category != "" && src.Category == cand.Category
	if sameCategory {
		b.Add(FactorCategory, r.config.CategoryWeight)
	}

	overlap := sharedTerms(src.Focus, cand.Focus)
	if sameCategory {
		// the shared category is already credited above
		overlap = removeTerm(overlap, src.Category)
	}
	b.Add(FactorFocus, r.config.FocusWeight*float64(min(len(overlap), r.config.MaxFocusOverlap)))

	if len(sharedTerms(src.Places, cand.Places)) > 0 {
		b.Add(FactorRegion, r.config.RegionWeight)
	}

	if src.Year != 0 && cand.Year != 0 {
		d := abs(src.Year - cand.Year)
		if d <= r.config.TemporalWindow {
			decay := 1 - float64(d)/float64(r.config.TemporalWindow+1)
			b.Add(FactorTemporal, r.config.TemporalWeight*decay)
		}
	}
	return b
}

// scoreAffinity scores a candidate against a biography section, which carries
// no comparable year or category: a curated per-section type preference,
// refined by overlap with the section's keywords.
func (r *Ranker) scoreAffinity(b *Breakdown, src, cand *Profile) {
	pref := r.config.AffinityFor(src.Section, cand.Type)
	if pref <= 0 {
		return
	}
	b.Add(FactorAffinity, r.config.AffinityWeight*pref)
	overlap := sharedTerms(src.Focus, cand.Focus)
	b.Add(FactorFocus, r.config.FocusWeight*pref*float64(min(len(overlap), r.config.MaxFocusOverlap)))
}

// GetConfig returns the ranking configuration.
func (r *Ranker) GetConfig() *RankingConfig {
	return r.config
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
