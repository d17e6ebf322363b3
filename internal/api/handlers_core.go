// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/playtrackhq/playtrack/internal/analytics"
	"github.com/playtrackhq/playtrack/internal/datasource"
	"github.com/playtrackhq/playtrack/internal/models"
)

// Health reports service and snapshot status.
//
// Method: GET
// Path: /api/v1/health
//
// Always answers 200 once the process is serving; "ready" in the body
// distinguishes whether a dataset snapshot has loaded yet.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()
	snap := h.store.Current()

	h.respond(w, map[string]interface{}{
		"status":          "ok",
		"ready":           h.store.Ready(),
		"sessions":        len(snap.Sessions),
		"dropped_records": snap.Dropped,
	}, start, snap)
}

// Sessions returns the filtered session list.
//
// Method: GET
// Path: /api/v1/sessions
//
// Query: user, period (0|1|7|30), games (comma-separated).
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	req, apiErr := parseChartRequest(r, analytics.DefaultPieTopGames)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	snap := h.store.Current()
	sessions := analytics.Filter(snap.Sessions, req.filterParams(), h.now())

	// Empty slice rather than null keeps the frontend's .map() happy.
	if sessions == nil {
		sessions = []models.Session{}
	}

	h.respond(w, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	}, start, snap)
}

// Users returns the sorted unique user list from the current snapshot.
//
// Method: GET
// Path: /api/v1/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()
	snap := h.store.Current()

	users := snap.Users
	if users == nil {
		users = []string{}
	}

	h.respond(w, map[string]interface{}{"users": users}, start, snap)
}

// Games returns the sorted unique game list from the current snapshot.
//
// Method: GET
// Path: /api/v1/games
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()
	snap := h.store.Current()

	games := snap.Games
	if games == nil {
		games = []string{}
	}

	h.respond(w, map[string]interface{}{"games": games}, start, snap)
}

// Refresh triggers an on-demand dataset fetch. The fetch runs
// synchronously so a 200 means the snapshot is already swapped.
//
// Method: POST
// Path: /api/v1/refresh
//
// Response:
//   - 200: snapshot refreshed
//   - 429: manual refresh throttle exceeded
//   - 502: upstream returned an error
//   - 503: circuit breaker open, or no refresher configured
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if h.refresher == nil {
		respondError(w, http.StatusServiceUnavailable, codeUpstreamUnavailable, "Refresh is not available", nil)
		return
	}

	start := time.Now()
	if err := h.refresher.Refresh(r.Context()); err != nil {
		switch {
		case errors.Is(err, datasource.ErrRefreshThrottled):
			respondError(w, http.StatusTooManyRequests, codeRateLimited, "Refresh throttled, try again later", nil)
		case errors.Is(err, datasource.ErrBreakerOpen):
			respondError(w, http.StatusServiceUnavailable, codeUpstreamUnavailable, "Upstream temporarily unavailable", err)
		default:
			var fetchErr *datasource.FetchError
			if errors.As(err, &fetchErr) {
				respondError(w, http.StatusBadGateway, codeUpstreamError, "Upstream fetch failed", err)
				return
			}
			respondError(w, http.StatusInternalServerError, codeInternalError, "Refresh failed", err)
		}
		return
	}

	snap := h.store.Current()
	h.respond(w, map[string]interface{}{
		"refreshed":       true,
		"sessions":        len(snap.Sessions),
		"dropped_records": snap.Dropped,
	}, start, snap)
}
