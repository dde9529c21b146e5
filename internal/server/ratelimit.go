package server

import (
	"net/http"
	"strconv"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/config"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimit rejects requests beyond the configured token bucket with 429.
func (s *Server) rateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	retryAfter := 1
	if cfg.RequestsPerSecond < 1 {
		retryAfter = int(1/cfg.RequestsPerSecond + 0.5)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				s.logger.Debug("rate limited",
					zap.String("path", r.URL.Path),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				s.respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
