// Package config provides configuration loading and structs for the search service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/ranking"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool                  `yaml:"debug"`
	Server  ServerConfig          `yaml:"server"`
	Corpus  CorpusConfig          `yaml:"corpus"`
	Search  SearchConfig          `yaml:"search"`
	Ranking ranking.RankingConfig `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host      string          `yaml:"host"`
	Port      int             `yaml:"port"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig throttles the API with a token bucket shared by all
// clients. A zero RequestsPerSecond disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CorpusConfig selects the content source. An empty Path uses the embedded
// default content.
type CorpusConfig struct {
	Path string `yaml:"path"`
	// Watch rebuilds the corpus when the file at Path changes.
	Watch bool `yaml:"watch"`
	// DebounceMillis delays a reload until writes to the file settle.
	DebounceMillis int `yaml:"debounce_ms"`
	SummaryLength  int `yaml:"summary_length"`
}

// SearchConfig holds query, suggestion, and recommendation settings.
type SearchConfig struct {
	ExcerptLength             int `yaml:"excerpt_length"`
	MaxSuggestions            int `yaml:"max_suggestions"`
	MinSuggestionLength       int `yaml:"min_suggestion_length"`
	DefaultMaxRecommendations int `yaml:"default_max_recommendations"`
	DefaultYearMin            int `yaml:"default_year_min"`
	DefaultYearMax            int `yaml:"default_year_max"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed, or if the ranking
// weights are invalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Ranking.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	if cfg.Corpus.Path != "" {
		cfg.Corpus.Path = expandPath(cfg.Corpus.Path, filepath.Dir(path))
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
