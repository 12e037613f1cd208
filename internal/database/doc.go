// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package database provides DuckDB-backed storage for the hobby catalog and
// the user signals read by the recommendation engine.
//
// # Architecture
//
//   - database.go: Core lifecycle (connection, initialization, cleanup)
//   - database_schema.go: Table and index creation
//   - database_connection.go: Connection pool configuration
//   - database_utils.go: Context helpers, checkpoint and table counts
//   - crud.go: Write helpers used by the demo seed and tests
//   - recommend_provider.go: recommend.DataProvider implementation
//   - seed.go: Deterministic demo data (SEED_MOCK_DATA=true)
//
// # Read Model
//
// RecommendationDataProvider serves the five reads of the engine. Each read
// runs under a 5 second timeout and is recorded in the
// duckdb_query_duration_seconds histogram. A missing survey is reported as (nil, nil), never as an error.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to open database")
//	}
//	defer db.Close()
//
//	engine.SetDataProvider(database.NewRecommendationDataProvider(db))
//
// # Concurrency
//
// All exported methods are safe for concurrent use. Neighbor search issues
// parallel reads, so the connection pool is sized to the CPU count.
package database
