// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
Package main is the entry point for the hobbyrec server.

Hobbyrec recommends hobbies to active retirees by blending a survey-based
content score with a neighbor-based collaborative score. The blend shifts
toward the collaborative signal as a user's activity grows.

# Application Architecture

	RootSupervisor ("hobbyrec")
	├── DataSupervisor ("data-layer")
	│   └── DuckDB checkpoint (file databases only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB, optionally seeded with demo data (SEED_MOCK_DATA=true)
 4. Recommendation engine: hybrid engine over the DuckDB data provider
 5. HTTP Server: Chi router with CORS, rate limiting and Prometheus metrics
 6. Supervisor Tree: Suture v4 process supervision

SIGINT and SIGTERM cancel the tree; the HTTP server drains within
SHUTDOWN_TIMEOUT and the database is checkpointed on close.
*/
package main
