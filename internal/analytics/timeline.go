// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"sort"
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// DefaultTimelineWindow is the trailing span rendered by the timeline
// chart.
const DefaultTimelineWindow = 24 * time.Hour

// TimelineSegment is one status run of one session with absolute bounds,
// ready for Gantt-style rendering.
type TimelineSegment struct {
	Game   string
	User   string
	Status models.Status
	Start  int64
	Stop   int64
}

// SplitTimeline explodes a session into one segment per contiguous status
// run. Segment boundaries accumulate run durations from the session's
// start; the expansion is lossless, so the segments concatenated cover
// exactly [Start, Stop).
func SplitTimeline(s models.Session) []TimelineSegment {
	if len(s.StatusLog) == 0 {
		return nil
	}

	segments := make([]TimelineSegment, 0, len(s.StatusLog))
	cursor := s.Start
	for _, run := range s.StatusLog {
		segments = append(segments, TimelineSegment{
			Game:   s.Game,
			User:   s.User,
			Status: run.Status,
			Start:  cursor,
			Stop:   cursor + run.DurationMS,
		})
		cursor += run.DurationMS
	}
	return segments
}

// BuildTimeline assembles the timeline chart data: sessions intersecting
// the trailing window, exploded into per-run segments and grouped into one
// series per game. Series, user rows, and the game legend are sorted
// lexicographically so the rendering is deterministic.
func BuildTimeline(sessions []models.Session, now time.Time, window time.Duration) models.TimelineData {
	if window <= 0 {
		window = DefaultTimelineWindow
	}
	rangeEnd := now.UnixMilli()
	rangeStart := now.Add(-window).UnixMilli()

	perGame := make(map[string][]models.TimelinePoint)
	userSet := make(map[string]struct{})

	for _, s := range sessions {
		if s.Stop <= rangeStart || s.Start >= rangeEnd || s.User == "" {
			continue
		}
		userSet[s.User] = struct{}{}
		for _, seg := range SplitTimeline(s) {
			perGame[seg.Game] = append(perGame[seg.Game], models.TimelinePoint{
				User:   seg.User,
				Range:  [2]int64{seg.Start, seg.Stop},
				Status: seg.Status,
			})
		}
	}

	data := models.TimelineData{
		Series:     make([]models.TimelineSeries, 0, len(perGame)),
		Users:      make([]string, 0, len(userSet)),
		Games:      make([]string, 0, len(perGame)),
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	}
	for game, points := range perGame {
		data.Series = append(data.Series, models.TimelineSeries{Name: game, Data: points})
		data.Games = append(data.Games, game)
	}
	sort.Slice(data.Series, func(i, j int) bool { return data.Series[i].Name < data.Series[j].Name })
	sort.Strings(data.Games)

	for user := range userSet {
		data.Users = append(data.Users, user)
	}
	sort.Strings(data.Users)

	return data
}
