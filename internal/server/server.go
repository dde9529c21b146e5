// Package server provides the HTTP API for site search and recommendations.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/config"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/metrics"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/service"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the HTTP server for the search API.
type Server struct {
	svc     *service.Service
	config  *config.ServerConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
	server  *http.Server
}

// NewServer creates a server with the given dependencies. A nil metrics
// collection gets a fresh one.
func NewServer(
	svc *service.Service,
	cfg *config.ServerConfig,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Server {
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		svc:     svc,
		config:  cfg,
		logger:  utils.OrNop(logger),
		metrics: m,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Route("/api/v1", func(r chi.Router) {
		if limit := s.config.RateLimit; limit.RequestsPerSecond > 0 {
			r.Use(s.rateLimit(limit))
		}
		r.Get("/search", s.instrument("search", s.handleSearchGet))
		r.Post("/search", s.instrument("search", s.handleSearchPost))
		r.Get("/filters", s.instrument("filters", s.handleFilters))
		r.Get("/suggestions", s.instrument("suggestions", s.handleSuggestions))
		r.Get("/recommendations/{kind}/{id}", s.instrument("recommendations", s.handleRecommendations))
		r.Get("/status", s.instrument("status", s.handleStatus))
		r.Post("/reload", s.instrument("reload", s.handleReload))
	})
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// instrument records request count and latency for one operation.
func (s *Server) instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)
		status := "success"
		if ww.Status() >= http.StatusBadRequest {
			status = "error"
		}
		s.metrics.RecordRequest(operation, status, time.Since(start))
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
