// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

import (
	"net/http"
	"time"

	"github.com/playtrackhq/playtrack/internal/analytics"
	"github.com/playtrackhq/playtrack/internal/models"
)

// This file contains the chart endpoints backing the dashboard panels.
// Every handler follows the same shape: parse and validate the shared
// query surface, filter the snapshot's sessions, run one aggregation
// from the analytics package, and wrap the result in the envelope.
//
// Endpoints:
//   - GamesPlayed:   doughnut of total playtime per game (top-N + Other)
//   - ActivityByDay: stacked bars per calendar day
//   - ActivityTrend: playtime folded by hour-of-day or day-of-week
//   - GameDetails:   per-user active time for one game
//   - Timeline:      per-user status segments over the trailing window

// GamesPlayed returns the playtime-per-game doughnut series.
//
// Method: GET
// Path: /api/v1/charts/games-played
func (h *Handler) GamesPlayed(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	req, apiErr := parseChartRequest(r, h.cfg.Charts.PieTopGames)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	snap := h.store.Current()
	sessions := analytics.Filter(snap.Sessions, req.filterParams(), h.now())

	data := analytics.GamesPlayed(sessions, req.Limit, req.Games, req.All)
	h.respond(w, data, start, snap)
}

// ActivityByDay returns the stacked per-day bar series.
//
// Method: GET
// Path: /api/v1/charts/activity-by-day
func (h *Handler) ActivityByDay(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	req, apiErr := parseChartRequest(r, h.cfg.Charts.BarTopGames)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	snap := h.store.Current()
	now := h.now()
	sessions := analytics.Filter(snap.Sessions, req.filterParams(), now)

	data := analytics.ActivityByDay(sessions, models.TimePeriod(req.Period), req.Limit, req.Games, req.All, now, h.loc)
	h.respond(w, data, start, snap)
}

// ActivityTrend returns total playtime folded into hour-of-day slots for
// a one-day window, day-of-week slots otherwise.
//
// Method: GET
// Path: /api/v1/charts/activity-trend
func (h *Handler) ActivityTrend(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	req, apiErr := parseChartRequest(r, h.cfg.Charts.PieTopGames)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	snap := h.store.Current()
	now := h.now()
	sessions := analytics.Filter(snap.Sessions, req.filterParams(), now)

	data := analytics.ActivityTrend(sessions, models.TimePeriod(req.Period), now, h.loc)
	h.respond(w, data, start, snap)
}

// GameDetails returns the per-user active-time breakdown for one game.
//
// Method: GET
// Path: /api/v1/charts/game-details
//
// The game query parameter is required; an unknown game yields an empty
// series rather than 404, matching the dashboard's optimistic loading.
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	game := r.URL.Query().Get("game")
	if game == "" {
		respondError(w, http.StatusBadRequest, codeValidationError, "game parameter is required", nil)
		return
	}

	req, apiErr := parseChartRequest(r, h.cfg.Charts.PieTopGames)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	snap := h.store.Current()
	sessions := analytics.Filter(snap.Sessions, req.filterParams(), h.now())

	data := analytics.GameDetails(sessions, game)
	h.respond(w, data, start, snap)
}

// Timeline returns per-user status segments over the trailing window.
//
// Method: GET
// Path: /api/v1/charts/timeline
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	req, apiErr := parseChartRequest(r, h.cfg.Charts.PieTopGames)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	snap := h.store.Current()
	now := h.now()
	sessions := analytics.Filter(snap.Sessions, req.filterParams(), now)

	data := analytics.Timeline(sessions, now, h.cfg.Charts.TimelineWindow)
	h.respond(w, data, start, snap)
}
