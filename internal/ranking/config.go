package ranking

import (
	"errors"
	"fmt"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// ErrInvalidWeights is returned by Validate when the field weights do not
// satisfy TitleWeight > KeywordWeight > BodyWeight > 0.
var ErrInvalidWeights = errors.New("invalid ranking weights")

// RankingConfig holds all weights used by query scoring and recommendation
// similarity.
type RankingConfig struct {
	// Query field weights: Score = Wt*hits(title) + Wk*hits(keywords) + Wb*hits(body)
	TitleWeight   float64 `yaml:"title_weight"`   // default: 10
	KeywordWeight float64 `yaml:"keyword_weight"` // default: 4
	BodyWeight    float64 `yaml:"body_weight"`    // default: 1

	// Recommendation factor weights
	CategoryWeight  float64 `yaml:"category_weight"`   // default: 8
	FocusWeight     float64 `yaml:"focus_weight"`      // default: 6 per shared focus term
	MaxFocusOverlap int     `yaml:"max_focus_overlap"` // default: 3
	RegionWeight    float64 `yaml:"region_weight"`     // default: 4
	TemporalWeight  float64 `yaml:"temporal_weight"`   // default: 3 at zero distance
	TemporalWindow  int     `yaml:"temporal_window"`   // default: 5 years
	AffinityWeight  float64 `yaml:"affinity_weight"`   // default: 5

	// Affinity maps a biography section key to a preference in [0,1] per
	// candidate type. Sections missing from the table use DefaultAffinity.
	Affinity        map[string]map[models.DocumentType]float64 `yaml:"affinity"`
	DefaultAffinity map[models.DocumentType]float64            `yaml:"default_affinity"`
}

// DefaultRankingConfig returns the default ranking configuration.
func DefaultRankingConfig() *RankingConfig {
	return &RankingConfig{
		TitleWeight:   10,
		KeywordWeight: 4,
		BodyWeight:    1,

		CategoryWeight:  8,
		FocusWeight:     6,
		MaxFocusOverlap: 3,
		RegionWeight:    4,
		TemporalWeight:  3,
		TemporalWindow:  5,
		AffinityWeight:  5,

		Affinity: map[string]map[models.DocumentType]float64{
			"early-years":     {models.TypeWork: 0.7, models.TypeScholar: 0.3},
			"nancy-workshops": {models.TypeWork: 0.8, models.TypeScholar: 0.2},
			"maxeville":       {models.TypeWork: 0.9, models.TypeScholar: 0.3},
			"paris-practice":  {models.TypeWork: 0.6, models.TypeScholar: 0.4},
			"teaching":        {models.TypeWork: 0.2, models.TypeScholar: 0.8},
			"legacy":          {models.TypeWork: 0.3, models.TypeScholar: 0.9},
		},
		DefaultAffinity: map[models.DocumentType]float64{
			models.TypeWork:    0.5,
			models.TypeScholar: 0.5,
		},
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *RankingConfig) ApplyDefaults() {
	defaults := DefaultRankingConfig()

	if c.TitleWeight == 0 {
		c.TitleWeight = defaults.TitleWeight
	}
	if c.KeywordWeight == 0 {
		c.KeywordWeight = defaults.KeywordWeight
	}
	if c.BodyWeight == 0 {
		c.BodyWeight = defaults.BodyWeight
	}

	if c.CategoryWeight == 0 {
		c.CategoryWeight = defaults.CategoryWeight
	}
	if c.FocusWeight == 0 {
		c.FocusWeight = defaults.FocusWeight
	}
	if c.MaxFocusOverlap == 0 {
		c.MaxFocusOverlap = defaults.MaxFocusOverlap
	}
	if c.RegionWeight == 0 {
		c.RegionWeight = defaults.RegionWeight
	}
	if c.TemporalWeight == 0 {
		c.TemporalWeight = defaults.TemporalWeight
	}
	if c.TemporalWindow == 0 {
		c.TemporalWindow = defaults.TemporalWindow
	}
	if c.AffinityWeight == 0 {
		c.AffinityWeight = defaults.AffinityWeight
	}

	if c.Affinity == nil {
		c.Affinity = defaults.Affinity
	}
	if c.DefaultAffinity == nil {
		c.DefaultAffinity = defaults.DefaultAffinity
	}
}

// Validate checks the ordering of the query field weights.
func (c *RankingConfig) Validate() error {
	if c.BodyWeight <= 0 || c.KeywordWeight <= c.BodyWeight || c.TitleWeight <= c.KeywordWeight {
		return fmt.Errorf("%w: need title (%g) > keyword (%g) > body (%g) > 0",
			ErrInvalidWeights, c.TitleWeight, c.KeywordWeight, c.BodyWeight)
	}
	return nil
}

// AffinityFor returns the curated preference of a biography section for a
// candidate document type.
func (c *RankingConfig) AffinityFor(section string, t models.DocumentType) float64 {
	if prefs, ok := c.Affinity[section]; ok {
		return prefs[t]
	}
	return c.DefaultAffinity[t]
}
