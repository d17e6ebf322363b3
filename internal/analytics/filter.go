// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// Filter applies the dashboard's filter spec to the working set, preserving
// the original order. The three predicates (user, trailing window, game
// set) compose by conjunction and are evaluated in a single pass.
//
// The trailing window keeps sessions whose start is strictly after
// now - Period calendar days. A zero Period (forever) keeps everything.
func Filter(sessions []models.Session, params models.FilterParams, now time.Time) []models.Session {
	var cutoff int64
	if params.Period.Finite() {
		cutoff = now.AddDate(0, 0, -params.Period.Days()).UnixMilli()
	}

	var games map[string]struct{}
	if len(params.Games) > 0 {
		games = make(map[string]struct{}, len(params.Games))
		for _, g := range params.Games {
			games[g] = struct{}{}
		}
	}

	filtered := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if params.UserID != "" && s.User != params.UserID {
			continue
		}
		if params.Period.Finite() && s.Start <= cutoff {
			continue
		}
		if games != nil {
			if _, ok := games[s.Game]; !ok {
				continue
			}
		}
		filtered = append(filtered, s)
	}
	return filtered
}
