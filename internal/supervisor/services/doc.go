// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: runs the chi router behind *http.Server (api layer)
//   - CheckpointService: periodic DuckDB checkpoint (data layer)
//
// Both return ctx.Err() on a graceful stop and a wrapped error on failure,
// which suture answers with a restart under its backoff policy.
package services
