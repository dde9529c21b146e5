package server

import (
	"net/http"
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/config"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRateLimit(t *testing.T) {
	svc, err := service.New(nil, service.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	cfg := &config.ServerConfig{
		Host:      "localhost",
		Port:      8080,
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 0.1, Burst: 2},
	}
	h := NewServer(svc, cfg, zap.NewNop(), nil).Routes()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/filters", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/status", nil).Code)

	w := do(t, h, http.MethodGet, "/api/v1/filters", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "10", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	// health and metrics stay reachable
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil).Code)
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	h := newTestServer(t).Routes()
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/filters", nil).Code)
	}
}
