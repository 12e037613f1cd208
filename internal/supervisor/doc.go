// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
Package supervisor provides the suture v4 process tree of the service.

	hobbyrec (root)
	├── data-layer
	│   └── duckdb-checkpoint
	└── api-layer
	    └── http-server

Supervisor events are logged through sutureslog into the zerolog-backed
slog handler from the logging package. Services live in the services
subpackage.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCheckpointService(db, 5*time.Minute, slogger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
