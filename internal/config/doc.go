// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package config loads and validates Hobbyrec configuration.
//
// Configuration is layered with Koanf v2: struct defaults, then an optional
// YAML file (CONFIG_PATH, ./config.yaml or /etc/hobbyrec/config.yaml), then
// environment variables. Only environment variables listed in the mapping
// table are read.
//
// # Example config.yaml
//
//	server:
//	  port: 8080
//	  environment: production
//	database:
//	  path: /data/hobbyrec.duckdb
//	security:
//	  cors_origins: ["https://hobbies.example.org"]
//	recommend:
//	  neighbors_k: 5
//	  candidate_pool_size: 100
//
// # Environment Overrides
//
//	HTTP_PORT=9000 LOG_LEVEL=debug RECOMMEND_NEIGHBORS_K=10 ./hobbyrec
package config
