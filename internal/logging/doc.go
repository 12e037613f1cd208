// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package logging provides centralized zerolog-based structured logging for Hobbyrec.
//
// JSON output is used in production and a console writer in development.
// The global logger is configured once at startup from the logging section
// of the service configuration.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("user_id", 42).Msg("Recommendations served")
//	logging.Error().Err(err).Msg("Catalog query failed")
//
// # Request Scoped Logging
//
// The HTTP layer stores the chi request ID in the context with
// ContextWithRequestID. Ctx returns a logger carrying that ID so that log
// lines from the recommendation engine can be correlated with the request:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("collaborative stage failed")
//
// # slog Integration
//
// Suture v4 logs through sutureslog, which needs a *slog.Logger.
// NewSlogLogger bridges slog records into the zerolog stream.
package logging
