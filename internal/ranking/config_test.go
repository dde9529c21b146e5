package ranking

import (
	"errors"
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

func TestDefaultRankingConfig_Validates(t *testing.T) {
	cfg := DefaultRankingConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if !(cfg.TitleWeight > cfg.KeywordWeight && cfg.KeywordWeight > cfg.BodyWeight) {
		t.Errorf("expected title > keyword > body, got %v/%v/%v", cfg.TitleWeight, cfg.KeywordWeight, cfg.BodyWeight)
	}
}

func TestRankingConfig_ApplyDefaults(t *testing.T) {
	cfg := &RankingConfig{TitleWeight: 20}
	cfg.ApplyDefaults()
	if cfg.TitleWeight != 20 {
		t.Errorf("explicit TitleWeight overwritten: %v", cfg.TitleWeight)
	}
	if cfg.BodyWeight != 1 || cfg.KeywordWeight != 4 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.TemporalWindow != 5 || cfg.MaxFocusOverlap != 3 {
		t.Errorf("integer defaults not applied: window=%d overlap=%d", cfg.TemporalWindow, cfg.MaxFocusOverlap)
	}
	if cfg.Affinity == nil || cfg.DefaultAffinity == nil {
		t.Error("affinity tables should default")
	}
}

func TestRankingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RankingConfig
		wantErr bool
	}{
		{"ordered", RankingConfig{TitleWeight: 3, KeywordWeight: 2, BodyWeight: 1}, false},
		{"keyword equals title", RankingConfig{TitleWeight: 2, KeywordWeight: 2, BodyWeight: 1}, true},
		{"body above keyword", RankingConfig{TitleWeight: 5, KeywordWeight: 1, BodyWeight: 2}, true},
		{"zero body", RankingConfig{TitleWeight: 5, KeywordWeight: 2, BodyWeight: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("expected ErrInvalidWeights, got %v", err)
			}
		})
	}
}

func TestRankingConfig_AffinityFor(t *testing.T) {
	cfg := DefaultRankingConfig()
	if got := cfg.AffinityFor("teaching", models.TypeScholar); got != 0.8 {
		t.Errorf("teaching/scholar = %v, want 0.8", got)
	}
	if got := cfg.AffinityFor("unknown-section", models.TypeWork); got != 0.5 {
		t.Errorf("unknown section should use default affinity, got %v", got)
	}
	if got := cfg.AffinityFor("teaching", models.TypeBiography); got != 0 {
		t.Errorf("biography candidates have no affinity, got %v", got)
	}
}
