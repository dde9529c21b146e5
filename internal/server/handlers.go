package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errBadParam = errors.New("invalid parameter")

type searchResponse struct {
	Query   models.SearchQuery `json:"query"`
	Total   int                `json:"total"`
	Results any                `json:"results"`
}

func (s *Server) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.search(w, r, query)
}

func (s *Server) handleSearchPost(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := query.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.search(w, r, query)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, query models.SearchQuery) {
	s.logger.Debug("search request",
		zap.String("term", query.Term),
		zap.String("sort", string(query.SortBy)),
		zap.Bool("filtered", query.Filters.Active()),
	)
	resp := searchResponse{Query: query}
	if explain, _ := strconv.ParseBool(r.URL.Query().Get("explain")); explain {
		hits := s.svc.SearchWithBreakdown(query)
		resp.Total, resp.Results = len(hits), hits
	} else {
		results := s.svc.PerformGlobalSearch(query)
		resp.Total, resp.Results = len(results), results
	}
	s.metrics.RecordResults("search", resp.Total)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.svc.GetGlobalSearchFilters())
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := s.svc.GetSearchSuggestions(r.URL.Query().Get("q"))
	s.metrics.RecordResults("suggestions", len(suggestions))
	s.respondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// recommendationKinds maps URL path segments to source document types.
var recommendationKinds = map[string]models.DocumentType{
	"works":     models.TypeWork,
	"scholars":  models.TypeScholar,
	"biography": models.TypeBiography,
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	sourceType, ok := recommendationKinds[kind]
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("unknown recommendation source %q", kind))
		return
	}
	q := r.URL.Query()
	var opts models.RecommendOptions
	if v := q.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, "max must be a non-negative integer")
			return
		}
		opts.MaxResults = n
	}
	opts.IncludeTypes = parseTypes(q["types"])

	id := chi.URLParam(r, "id")
	items := s.svc.Recommend(sourceType, id, opts)
	s.logger.Debug("recommendation request",
		zap.String("type", string(sourceType)), zap.String("id", id), zap.Int("results", len(items)))
	s.metrics.RecordResults("recommendations", len(items))
	s.respondJSON(w, http.StatusOK, map[string]any{"source": id, "type": sourceType, "items": items})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.svc.Status())
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Reload(); err != nil {
		s.logger.Error("reload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, s.svc.Status())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// parseSearchQuery reads a query from URL parameters. List parameters accept
// repeated keys and comma-separated values.
func parseSearchQuery(v url.Values) (models.SearchQuery, error) {
	query := models.SearchQuery{
		Term:   v.Get("q"),
		SortBy: models.SortOrder(v.Get("sort")),
		Filters: models.Filters{
			Types:      parseTypes(v["type"]),
			Categories: splitList(v["category"]),
			Regions:    splitList(v["region"]),
		},
	}
	yearMin, hasMin, err := parseYear(v, "year_min")
	if err != nil {
		return query, err
	}
	yearMax, hasMax, err := parseYear(v, "year_max")
	if err != nil {
		return query, err
	}
	if hasMin || hasMax {
		if !hasMin {
			yearMin = math.MinInt32
		}
		if !hasMax {
			yearMax = math.MaxInt32
		}
		query.Filters.Year = &models.YearRange{Min: yearMin, Max: yearMax}
	}
	if err := query.Validate(); err != nil {
		return query, err
	}
	return query, nil
}

func parseYear(v url.Values, key string) (int, bool, error) {
	raw := v.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", errBadParam, key)
	}
	return n, true, nil
}

func parseTypes(values []string) []models.DocumentType {
	list := splitList(values)
	if len(list) == 0 {
		return nil
	}
	types := make([]models.DocumentType, len(list))
	for i, t := range list {
		types[i] = models.DocumentType(t)
	}
	return types
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
