// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// Timestamp layouts used by the upstream dataset. Records written by newer
// tracker versions carry an explicit UTC offset; older ones are local time.
const (
	timestampLayout       = "1/2/2006, 3:04:05 PM"
	timestampLayoutOffset = "1/2/2006, 3:04:05 PM -07:00"
)

// ParseTimestamp parses an upstream session timestamp
// ("MM/D/YYYY, hh:mm:ss A" with an optional trailing UTC offset).
// Timestamps without an offset are interpreted in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(timestampLayoutOffset, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(timestampLayout, value, loc)
}

// Normalize converts raw dataset records into canonical Session values.
//
// Records with unparsable timestamps or a stop before their start are
// excluded and reported in the returned ParseError slice; the caller logs
// them and continues with the valid remainder (a bad record must never
// abort aggregation of the rest of the dataset).
//
// Records carrying a per-minute status log get it run-length encoded and
// fitted to the session's wall-clock duration; legacy records without one
// are treated as a single ACTIVE run spanning the whole session.
func Normalize(raws []models.RawSession, loc *time.Location) ([]models.Session, []*ParseError) {
	sessions := make([]models.Session, 0, len(raws))
	var dropped []*ParseError

	for i, raw := range raws {
		start, err := ParseTimestamp(raw.Start, loc)
		if err != nil {
			dropped = append(dropped, &ParseError{Index: i, Field: "start", Value: raw.Start, Err: err})
			continue
		}
		stop, err := ParseTimestamp(raw.Stop, loc)
		if err != nil {
			dropped = append(dropped, &ParseError{Index: i, Field: "stop", Value: raw.Stop, Err: err})
			continue
		}
		if stop.Before(start) {
			dropped = append(dropped, &ParseError{Index: i, Field: "duration", Value: raw.Stop})
			continue
		}

		startMS := start.UnixMilli()
		stopMS := stop.UnixMilli()
		duration := stopMS - startMS

		runs := fitRuns(SegmentSamples(raw.StatusLog, StatusQuantum), duration)

		var active, idle int64
		for _, run := range runs {
			switch run.Status {
			case models.StatusActive:
				active += run.DurationMS
			case models.StatusIdle:
				idle += run.DurationMS
			}
		}

		sessions = append(sessions, models.Session{
			Game:           raw.Game,
			User:           raw.User,
			Start:          startMS,
			Stop:           stopMS,
			Duration:       duration,
			StatusLog:      runs,
			ActiveDuration: active,
			IdleDuration:   idle,
		})
	}

	return sessions, dropped
}
