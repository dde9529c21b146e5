package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/ranking"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
search:
  excerpt_length: 80
ranking:
  title_weight: 20
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Search.ExcerptLength != 80 {
		t.Errorf("excerpt_length = %d, want 80", cfg.Search.ExcerptLength)
	}
	if cfg.Ranking.TitleWeight != 20 || cfg.Ranking.KeywordWeight != 4 {
		t.Errorf("ranking weights = %g/%g, want 20/4", cfg.Ranking.TitleWeight, cfg.Ranking.KeywordWeight)
	}
	if cfg.Corpus.Path != "" {
		t.Errorf("corpus path should stay empty for embedded content, got %q", cfg.Corpus.Path)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
corpus:
  path: "./data/content.yaml"
  watch: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "data", "content.yaml")
	if cfg.Corpus.Path != want {
		t.Errorf("corpus path = %s, want %s", cfg.Corpus.Path, want)
	}
	if !cfg.Corpus.Watch {
		t.Error("watch should be true")
	}
}

func TestLoad_invalidWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
ranking:
  title_weight: 2
  keyword_weight: 4
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ranking.ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights, got %v", err)
	}
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Search.ExcerptLength != 160 {
		t.Errorf("default excerpt length: got %d", cfg.Search.ExcerptLength)
	}
	if cfg.Search.MaxSuggestions != 5 || cfg.Search.MinSuggestionLength != 2 {
		t.Errorf("default suggestions: got max=%d min=%d", cfg.Search.MaxSuggestions, cfg.Search.MinSuggestionLength)
	}
	if cfg.Search.DefaultMaxRecommendations != 6 {
		t.Errorf("default max recommendations: got %d", cfg.Search.DefaultMaxRecommendations)
	}
	if cfg.Search.DefaultYearMin != 1901 || cfg.Search.DefaultYearMax != 1984 {
		t.Errorf("default year range: got [%d, %d]", cfg.Search.DefaultYearMin, cfg.Search.DefaultYearMax)
	}
	if cfg.Ranking.TitleWeight != 10 || cfg.Ranking.BodyWeight != 1 {
		t.Errorf("ranking defaults not applied: %+v", cfg.Ranking)
	}
	if cfg.Corpus.Watch {
		t.Error("watch should default to false")
	}
	if cfg.Server.RateLimit.RequestsPerSecond != 0 || cfg.Server.RateLimit.Burst != 0 {
		t.Errorf("rate limit should default to disabled: %+v", cfg.Server.RateLimit)
	}
}

func TestApplyDefaults_rateLimitBurst(t *testing.T) {
	cfg := &Config{Server: ServerConfig{RateLimit: RateLimitConfig{RequestsPerSecond: 2.5}}}
	ApplyDefaults(cfg)
	if cfg.Server.RateLimit.Burst != 3 {
		t.Errorf("burst: got %d, want 3", cfg.Server.RateLimit.Burst)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := Default()
	cfg.Server.Port = 9090
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("loaded port: got %d", loaded.Server.Port)
	}
	if loaded.Ranking.AffinityFor("teaching", "scholar") != 0.8 {
		t.Errorf("affinity table did not round-trip: %v", loaded.Ranking.Affinity)
	}
}
