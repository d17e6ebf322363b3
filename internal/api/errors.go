// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

package api

// Stable machine-readable error codes carried in APIError.Code. Clients
// switch on these, so changing one is a breaking change.
const (
	codeValidationError     = "VALIDATION_ERROR"
	codeNotFound            = "NOT_FOUND"
	codeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	codeRateLimited         = "RATE_LIMITED"
	codeUpstreamError       = "UPSTREAM_ERROR"
	codeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	codeInternalError       = "INTERNAL_ERROR"
)
