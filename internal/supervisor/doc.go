// Playtrack - Game Session Analytics and Visualization
// Copyright 2026 Gabriel V. (playtrackhq)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/playtrackhq/playtrack

// Package supervisor builds the suture service tree that runs Playtrack.
//
// The tree has two child layers under the root:
//
//   - data: the dataset refresher. A panic here restarts only the fetch
//     loop; the API keeps serving the last good snapshot.
//   - api: the HTTP server.
//
// Supervisor events (restarts, backoff, failures) are logged through
// sutureslog into the zerolog pipeline via logging.NewSlogLogger.
package supervisor
