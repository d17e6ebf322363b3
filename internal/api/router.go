// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playtrackhq/playtrack/internal/config"
	"github.com/playtrackhq/playtrack/internal/metrics"
	"github.com/playtrackhq/playtrack/internal/middleware"
)

// NewRouter assembles the full HTTP handler tree.
//
// Global stack (all routes): request ID, real IP, panic recovery, access
// logging, CORS. API stack (/api/v1): rate limiting, Prometheus request
// metrics, gzip. /metrics sits outside the rate limiter so a scraper can
// never be throttled out of its own signal.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "ETag"},
		MaxAge:         86400,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg.Security))
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Get("/health", h.Health)
		r.Get("/sessions", h.Sessions)
		r.Get("/users", h.Users)
		r.Get("/games", h.Games)
		r.Post("/refresh", h.Refresh)

		r.Route("/charts", func(r chi.Router) {
			r.Get("/games-played", h.GamesPlayed)
			r.Get("/activity-by-day", h.ActivityByDay)
			r.Get("/activity-trend", h.ActivityTrend)
			r.Get("/game-details", h.GameDetails)
			r.Get("/timeline", h.Timeline)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimit builds the per-IP API rate limiter from config. Disabled
// mode returns a pass-through so the middleware chain stays uniform.
func rateLimit(sec config.SecurityConfig) func(http.Handler) http.Handler {
	if sec.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		sec.RateLimitReqs,
		sec.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(r.URL.Path)
			respondError(w, http.StatusTooManyRequests, codeRateLimited, "Rate limit exceeded", nil)
		}),
	)
}
