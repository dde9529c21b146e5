// Package service exposes the six site operations (global search, filters,
// suggestions, and work/scholar/biography recommendations) over the
// current corpus snapshot.
package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/config"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/filter"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/metrics"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/ranking"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/recommend"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/search"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/suggest"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
	"go.uber.org/zap"
)

// engines bundles every component built over one snapshot. A reload builds
// a complete new bundle and swaps it in; calls already running keep the
// bundle they started with.
type engines struct {
	snap      *corpus.Snapshot
	search    *search.Engine
	suggest   *suggest.Suggester
	recommend *recommend.Engine
	filters   *filter.Registry
}

// Service is the entry point used by the HTTP server and the CLI.
type Service struct {
	cfg     *config.Config
	ranker  *ranking.Ranker
	logger  *zap.Logger
	metrics *metrics.Metrics
	current atomic.Pointer[engines]
	// serializes reloads; never held on the read path
	reloadMu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMetrics reports corpus size and reloads to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New loads the corpus named by cfg (the embedded content when no path is
// set) and builds a service over it.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	s := newService(cfg, opts...)
	snap, err := s.load(s.cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	s.install(snap)
	return s, nil
}

// NewFromSnapshot builds a service over an already loaded snapshot.
func NewFromSnapshot(snap *corpus.Snapshot, cfg *config.Config, opts ...Option) *Service {
	s := newService(cfg, opts...)
	s.install(snap)
	return s
}

func newService(cfg *config.Config, opts ...Option) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	config.ApplyDefaults(cfg)
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = utils.OrNop(s.logger)
	s.ranker = ranking.NewRanker(&cfg.Ranking)
	return s
}

func (s *Service) load(path string) (*corpus.Snapshot, error) {
	opts := []corpus.LoaderOption{
		corpus.WithLogger(s.logger),
		corpus.WithSummaryLength(s.cfg.Corpus.SummaryLength),
	}
	if path == "" {
		return corpus.LoadDefault(opts...)
	}
	return corpus.LoadFile(path, opts...)
}

func (s *Service) install(snap *corpus.Snapshot) {
	sc := s.cfg.Search
	e := &engines{
		snap: snap,
		search: search.NewEngine(snap, s.ranker,
			search.WithExcerptLength(sc.ExcerptLength),
			search.WithLogger(s.logger)),
		suggest: suggest.New(snap,
			suggest.WithMaxSuggestions(sc.MaxSuggestions),
			suggest.WithMinLength(sc.MinSuggestionLength)),
		recommend: recommend.NewEngine(snap, s.ranker,
			recommend.WithDefaultMaxResults(sc.DefaultMaxRecommendations),
			recommend.WithLogger(s.logger)),
		filters: filter.NewRegistry(snap,
			filter.WithDefaultYearRange(sc.DefaultYearMin, sc.DefaultYearMax)),
	}
	s.current.Store(e)

	if s.metrics != nil {
		counts := make(map[string]int)
		for t, n := range snap.CountByType() {
			counts[string(t)] = n
		}
		s.metrics.SetCorpusDocuments(counts)
	}
	s.logger.Info("corpus installed",
		zap.String("version", snap.Version()),
		zap.Int("documents", snap.Len()),
	)
}

// Reload rebuilds the corpus from its configured source and swaps it in.
// On failure the current snapshot stays in place.
func (s *Service) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := s.load(s.cfg.Corpus.Path)
	if s.metrics != nil {
		s.metrics.RecordReload(err)
	}
	if err != nil {
		s.logger.Warn("corpus reload failed, keeping current snapshot",
			zap.String("path", s.cfg.Corpus.Path), zap.Error(err))
		return fmt.Errorf("failed to reload corpus: %w", err)
	}
	s.install(snap)
	return nil
}

// PerformGlobalSearch runs a free-text search. A blank term yields an empty list.
func (s *Service) PerformGlobalSearch(query models.SearchQuery) []models.SearchResult {
	return s.current.Load().search.Search(query)
}

// SearchWithBreakdown is PerformGlobalSearch with per-field hit counts.
func (s *Service) SearchWithBreakdown(query models.SearchQuery) []search.Hit {
	return s.current.Load().search.SearchWithBreakdown(query)
}

// GetGlobalSearchFilters returns the facet catalogue of the whole corpus.
func (s *Service) GetGlobalSearchFilters() models.Facets {
	return s.current.Load().filters.Facets()
}

// GetSearchSuggestions returns autocomplete suggestions for partial input.
func (s *Service) GetSearchSuggestions(partial string) []string {
	return s.current.Load().suggest.Suggest(partial)
}

// GetWorkRecommendations returns documents related to the work with id.
func (s *Service) GetWorkRecommendations(id string, opts models.RecommendOptions) []models.RecommendationItem {
	return s.Recommend(models.TypeWork, id, opts)
}

// GetScholarRecommendations returns documents related to the scholar with id.
func (s *Service) GetScholarRecommendations(id string, opts models.RecommendOptions) []models.RecommendationItem {
	return s.Recommend(models.TypeScholar, id, opts)
}

// GetBiographyRecommendations returns documents related to a biography section.
func (s *Service) GetBiographyRecommendations(key string, opts models.RecommendOptions) []models.RecommendationItem {
	return s.Recommend(models.TypeBiography, key, opts)
}

// Recommend returns documents related to the source (t, id).
func (s *Service) Recommend(t models.DocumentType, id string, opts models.RecommendOptions) []models.RecommendationItem {
	return s.current.Load().recommend.Recommend(t, id, opts)
}

// Status describes the snapshot currently served.
type Status struct {
	Version   string         `json:"version"`
	LoadedAt  time.Time      `json:"loadedAt"`
	Source    string         `json:"source"`
	Watching  bool           `json:"watching"`
	Documents int            `json:"documents"`
	ByType    map[string]int `json:"byType"`
}

// Status reports the current snapshot.
func (s *Service) Status() Status {
	snap := s.current.Load().snap
	byType := make(map[string]int)
	for t, n := range snap.CountByType() {
		byType[string(t)] = n
	}
	source := s.cfg.Corpus.Path
	if source == "" {
		source = "embedded"
	}
	return Status{
		Version:   snap.Version(),
		LoadedAt:  snap.LoadedAt(),
		Source:    source,
		Watching:  s.cfg.Corpus.Watch && s.cfg.Corpus.Path != "",
		Documents: snap.Len(),
		ByType:    byType,
	}
}

// Snapshot returns the snapshot currently served.
func (s *Service) Snapshot() *corpus.Snapshot {
	return s.current.Load().snap
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config {
	return s.cfg
}
