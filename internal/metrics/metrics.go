// Package metrics provides Prometheus metrics for the search service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service. Each instance owns
// its registry so several servers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResultsReturned *prometheus.HistogramVec

	CorpusDocuments *prometheus.GaugeVec
	ReloadsTotal    *prometheus.CounterVec
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prouve_search_requests_total",
				Help: "Total number of requests per operation",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prouve_search_request_duration_seconds",
				Help:    "Duration of requests in seconds",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		ResultsReturned: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prouve_search_results_returned",
				Help:    "Number of items returned per request",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
			[]string{"operation"},
		),
		CorpusDocuments: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "prouve_search_corpus_documents",
				Help: "Number of documents in the current corpus snapshot",
			},
			[]string{"type"},
		),
		ReloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prouve_search_corpus_reloads_total",
				Help: "Total number of corpus reload attempts",
			},
			[]string{"status"},
		),
	}
}

// RecordRequest records one handled request.
func (m *Metrics) RecordRequest(operation, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordResults records how many items an operation returned.
func (m *Metrics) RecordResults(operation string, n int) {
	m.ResultsReturned.WithLabelValues(operation).Observe(float64(n))
}

// SetCorpusDocuments replaces the per-type document gauges.
func (m *Metrics) SetCorpusDocuments(counts map[string]int) {
	m.CorpusDocuments.Reset()
	for t, n := range counts {
		m.CorpusDocuments.WithLabelValues(t).Set(float64(n))
	}
}

// RecordReload records a corpus reload attempt.
func (m *Metrics) RecordReload(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ReloadsTotal.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
