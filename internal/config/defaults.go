package config

import "math"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimit.RequestsPerSecond > 0 && cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = int(math.Ceil(cfg.Server.RateLimit.RequestsPerSecond))
	}
	if cfg.Corpus.DebounceMillis == 0 {
		cfg.Corpus.DebounceMillis = 500
	}
	if cfg.Corpus.SummaryLength == 0 {
		cfg.Corpus.SummaryLength = 120
	}
	if cfg.Search.ExcerptLength == 0 {
		cfg.Search.ExcerptLength = 160
	}
	if cfg.Search.MaxSuggestions == 0 {
		cfg.Search.MaxSuggestions = 5
	}
	if cfg.Search.MinSuggestionLength == 0 {
		cfg.Search.MinSuggestionLength = 2
	}
	if cfg.Search.DefaultMaxRecommendations == 0 {
		cfg.Search.DefaultMaxRecommendations = 6
	}
	// Prouvé's lifetime, reported when no document carries a year.
	if cfg.Search.DefaultYearMin == 0 {
		cfg.Search.DefaultYearMin = 1901
	}
	if cfg.Search.DefaultYearMax == 0 {
		cfg.Search.DefaultYearMax = 1984
	}
	cfg.Ranking.ApplyDefaults()
}
