package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New()
	m.RecordRequest("search", "success", 3*time.Millisecond)
	m.RecordRequest("search", "success", time.Millisecond)
	m.RecordRequest("search", "error", time.Millisecond)
	m.RecordReload(nil)
	m.RecordReload(errors.New("boom"))
	m.SetCorpusDocuments(map[string]int{"work": 12, "scholar": 6})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("search", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("search", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReloadsTotal.WithLabelValues("error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.CorpusDocuments.WithLabelValues("work")))

	m.SetCorpusDocuments(map[string]int{"work": 3})
	assert.Equal(t, 1, testutil.CollectAndCount(m.CorpusDocuments))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordResults("suggestions", 4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "prouve_search_results_returned_count{operation=\"suggestions\"} 1")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.RecordReload(nil)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ReloadsTotal.WithLabelValues("success")))
}
