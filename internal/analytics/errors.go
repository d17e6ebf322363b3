// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package analytics

import "fmt"

// ParseError describes a raw dataset record that could not be normalized.
// The offending record is excluded from the working set; the pipeline
// continues with the remaining records.
type ParseError struct {
	// Index is the record's position in the raw dataset.
	Index int

	// Field names the offending field ("start", "stop", "duration").
	Field string

	// Value is the raw field value that failed to parse.
	Value string

	// Err is the underlying cause, when one exists.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record %d: invalid %s %q: %v", e.Index, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("record %d: invalid %s %q", e.Index, e.Field, e.Value)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
