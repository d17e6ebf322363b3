// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import (
	"time"

	"github.com/playtrackhq/playtrack/internal/models"
)

// StatusQuantum is the sampling interval of the upstream presence tracker:
// one status code per minute of session time.
const StatusQuantum = time.Minute

// SegmentSamples run-length-encodes a sequence of per-quantum status
// samples into contiguous status runs. The run durations always sum to
// len(codes) * quantum. Empty input yields an empty list; the normalizer
// substitutes a full-session ACTIVE run in that case.
func SegmentSamples(codes []int, quantum time.Duration) []models.StatusRun {
	if len(codes) == 0 {
		return []models.StatusRun{}
	}

	quantumMS := quantum.Milliseconds()
	runs := make([]models.StatusRun, 0, 4)

	current := models.StatusRun{
		Status:     models.StatusFromCode(codes[0]),
		DurationMS: quantumMS,
	}
	for _, code := range codes[1:] {
		status := models.StatusFromCode(code)
		if status == current.Status {
			current.DurationMS += quantumMS
			continue
		}
		runs = append(runs, current)
		current = models.StatusRun{Status: status, DurationMS: quantumMS}
	}
	return append(runs, current)
}

// fitRuns adjusts a run list so the concatenated runs cover exactly
// [0, duration). The sampled total can drift from the wall-clock session
// duration by up to one quantum; the final run absorbs the difference.
// Runs entirely beyond the duration are dropped.
func fitRuns(runs []models.StatusRun, duration int64) []models.StatusRun {
	if duration <= 0 {
		return []models.StatusRun{}
	}
	if len(runs) == 0 {
		return []models.StatusRun{{Status: models.StatusActive, DurationMS: duration}}
	}

	fitted := make([]models.StatusRun, 0, len(runs))
	var elapsed int64
	for _, run := range runs {
		if elapsed >= duration {
			break
		}
		if elapsed+run.DurationMS > duration {
			run.DurationMS = duration - elapsed
		}
		fitted = append(fitted, run)
		elapsed += run.DurationMS
	}
	if elapsed < duration {
		fitted[len(fitted)-1].DurationMS += duration - elapsed
	}
	return fitted
}
