// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package models

// ChartData is the plain labeled-series structure consumed by the
// dashboard's chart renderers (doughnut, bar, line). Every dataset's Data
// slice has exactly len(Labels) entries, aligned by index, so chart axes
// are stable across filter changes.
//
// Values are durations in milliseconds; presentation (humanized durations,
// colors, legends) is the client's concern.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one chart series: a category label plus one value per axis
// label.
type Dataset struct {
	Label string  `json:"label"`
	Data  []int64 `json:"data"`
}

// TimelinePoint is a single horizontal bar segment in the timeline chart:
// one status run of one session, placed on the row of its user.
type TimelinePoint struct {
	User   string   `json:"x"`
	Range  [2]int64 `json:"y"` // [start, stop] epoch milliseconds
	Status Status   `json:"status"`
}

// TimelineSeries groups timeline segments by game. The dashboard renders
// one color per series.
type TimelineSeries struct {
	Name string          `json:"name"`
	Data []TimelinePoint `json:"data"`
}

// TimelineData is the Gantt-style view of sessions within the trailing
// window. Users and Games are the sorted axis/legend domains; RangeStart
// and RangeEnd bound the x axis.
type TimelineData struct {
	Series     []TimelineSeries `json:"series"`
	Users      []string         `json:"users"`
	Games      []string         `json:"games"`
	RangeStart int64            `json:"range_start"`
	RangeEnd   int64            `json:"range_end"`
}
