// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package models

// Status represents a player's presence state during part of a session.
// The upstream tracker records one sample per minute as an integer code;
// Playtrack works with the symbolic form throughout.
type Status string

// Presence states, in upstream code order (0-3).
const (
	StatusActive       Status = "ACTIVE"
	StatusIdle         Status = "IDLE"
	StatusOffline      Status = "OFFLINE"
	StatusDoNotDisturb Status = "DO_NOT_DISTURB"

	// StatusUnknown covers status codes outside the documented 0-3 range.
	// Unknown runs are kept in the status log (the timeline still renders
	// them) but are excluded from active/idle duration sums, same as
	// OFFLINE.
	StatusUnknown Status = "UNKNOWN"
)

// StatusFromCode converts an upstream integer status code to a Status.
func StatusFromCode(code int) Status {
	switch code {
	case 0:
		return StatusActive
	case 1:
		return StatusIdle
	case 2:
		return StatusOffline
	case 3:
		return StatusDoNotDisturb
	default:
		return StatusUnknown
	}
}

// RawSession is one entry of the upstream dataset, before normalization.
//
// Start and Stop are formatted timestamps ("MM/D/YYYY, hh:mm:ss A", with
// an optional UTC offset suffix). StatusLog is an optional array of
// per-minute integer status codes; older records predate status tracking
// and omit it entirely.
type RawSession struct {
	Game      string `json:"game"`
	User      string `json:"user"`
	Start     string `json:"start"`
	Stop      string `json:"stop"`
	StatusLog []int  `json:"statusLog,omitempty"`
}

// StatusRun is a maximal contiguous span of a session with constant status.
type StatusRun struct {
	Status     Status `json:"status"`
	DurationMS int64  `json:"duration_ms"`
}

// Session is a normalized, immutable game activity record.
//
// Invariants (established by the normalizer, relied on by all aggregators):
//   - Stop >= Start, Duration = Stop - Start >= 0
//   - StatusLog runs are contiguous, non-overlapping, and concatenated
//     cover exactly [Start, Stop)
//   - ActiveDuration + IdleDuration <= Duration (OFFLINE, DO_NOT_DISTURB
//     and UNKNOWN runs count toward neither)
//
// Records without an upstream status log carry a single synthesized
// ACTIVE run spanning the full duration, so StatusLog is never nil for a
// session with positive duration.
type Session struct {
	Game           string      `json:"game"`
	User           string      `json:"user"`
	Start          int64       `json:"start"`
	Stop           int64       `json:"stop"`
	Duration       int64       `json:"duration_ms"`
	StatusLog      []StatusRun `json:"status_log"`
	ActiveDuration int64       `json:"active_duration_ms"`
	IdleDuration   int64       `json:"idle_duration_ms"`
}

// TimePeriod is the trailing filter window selected in the dashboard,
// expressed in calendar days. PeriodForever (0) disables the window.
type TimePeriod int

// Dashboard filter windows.
const (
	PeriodForever TimePeriod = 0
	PeriodDay     TimePeriod = 1
	PeriodWeek    TimePeriod = 7
	PeriodMonth   TimePeriod = 30
)

// Finite reports whether the period limits the working set at all.
func (p TimePeriod) Finite() bool {
	return p > 0
}

// Days returns the window length in days. Only meaningful when Finite.
func (p TimePeriod) Days() int {
	return int(p)
}

// FilterParams is the filter spec applied to the working set before any
// aggregation. Zero values mean "no filtering" for each field.
type FilterParams struct {
	// UserID keeps only sessions for this user (exact id match). Alias
	// resolution belongs to the dashboard's search box, not the engine.
	UserID string

	// Period keeps only sessions whose start is strictly after
	// now - Period days.
	Period TimePeriod

	// Games keeps only sessions whose game is in the set. Empty means no
	// game filtering.
	Games []string
}
