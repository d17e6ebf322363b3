// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/playtrackhq/playtrack/internal/models"
	"github.com/playtrackhq/playtrack/internal/validation"
)

// chartRequest is the query surface shared by the session and chart
// endpoints. Period accepts the dashboard's fixed windows only; Limit
// bounds the top-N category count so a client cannot request an
// unbounded legend.
type chartRequest struct {
	User   string `validate:"omitempty,max=120"`
	Period int    `validate:"oneof=0 1 7 30"`
	Limit  int    `validate:"gte=1,lte=50"`

	// Games is the explicit game selection. Doubles as a session filter
	// and as the chart category list, in the order given.
	Games []string `validate:"omitempty,max=50,dive,min=1,max=120"`

	// All disables top-N grouping so every game gets its own category.
	// Ignored when Games is non-empty.
	All bool
}

// parseChartRequest extracts and validates the shared chart query
// parameters. defaultLimit is the per-chart top-N configured for the
// endpoint. A nil error means req is safe to aggregate with.
func parseChartRequest(r *http.Request, defaultLimit int) (chartRequest, *models.APIError) {
	q := r.URL.Query()

	req := chartRequest{
		User:  q.Get("user"),
		Limit: defaultLimit,
	}

	// A non-numeric period fails the oneof validation below instead of
	// silently defaulting, so clients learn about their typo.
	if raw := q.Get("period"); raw != "" {
		period, err := strconv.Atoi(raw)
		if err != nil {
			period = -1
		}
		req.Period = period
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			limit = -1
		}
		req.Limit = limit
	}

	for _, game := range strings.Split(q.Get("games"), ",") {
		game = strings.TrimSpace(game)
		if game != "" {
			req.Games = append(req.Games, game)
		}
	}

	switch q.Get("all") {
	case "true", "1":
		req.All = true
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		return chartRequest{}, &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}
	}

	return req, nil
}

// filterParams maps the validated request onto the analytics filter spec.
func (req chartRequest) filterParams() models.FilterParams {
	return models.FilterParams{
		UserID: req.User,
		Period: models.TimePeriod(req.Period),
		Games:  req.Games,
	}
}
