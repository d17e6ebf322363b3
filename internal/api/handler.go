// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

import (
	"net/http"
	"time"

	"github.com/playtrackhq/playtrack/internal/config"
	"github.com/playtrackhq/playtrack/internal/datasource"
	"github.com/playtrackhq/playtrack/internal/models"
)

// Handler holds the dependencies shared by all HTTP handlers. All reads
// go through the snapshot store; handlers never touch the upstream
// directly.
type Handler struct {
	store     *datasource.Store
	refresher *datasource.Refresher
	cfg       *config.Config
	loc       *time.Location

	// now is swapped in tests for deterministic chart windows.
	now func() time.Time
}

// NewHandler wires a handler to the snapshot store and refresher.
// refresher may be nil, in which case POST /refresh reports the feature
// unavailable.
func NewHandler(store *datasource.Store, refresher *datasource.Refresher, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		refresher: refresher,
		cfg:       cfg,
		loc:       cfg.Dataset.Location(),
		now:       time.Now,
	}
}

// requireMethod validates the HTTP method, answering 405 itself when it
// does not match.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return false
	}
	return true
}

// respond wraps data in the success envelope, stamping aggregation time
// and the snapshot's fetch time.
func (h *Handler) respond(w http.ResponseWriter, data interface{}, queryStart time.Time, snap *datasource.Snapshot) {
	metadata := models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(queryStart).Milliseconds(),
	}
	if snap != nil && !snap.FetchedAt.IsZero() {
		fetchedAt := snap.FetchedAt
		metadata.DataAsOf = &fetchedAt
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: metadata,
	})
}
