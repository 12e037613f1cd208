// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package config

import "time"

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	db, err := database.New(&cfg.Database)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // DuckDB default is true
	SeedMockData           bool   `koanf:"seed_mock_data"`           // Populate demo hobbies, users and surveys on empty databases
}

// SecurityConfig holds HTTP edge protection settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// RecommendConfig holds the tunable parts of the recommendation engine.
// Scoring weights are fixed by the engine; this section covers pool sizes,
// list limits, tier thresholds and the collaborative-stage circuit breaker.
//
// Environment Variables:
//   - RECOMMEND_CANDIDATE_POOL_SIZE: Users scanned per neighbor search (default: 100)
//   - RECOMMEND_NEIGHBORS_K: Neighbors kept per search (default: 5)
//   - RECOMMEND_WORKERS: Concurrent candidate vector builds (default: 8)
//   - RECOMMEND_DEFAULT_TOP_N: List size when the request omits one (default: 6)
//   - RECOMMEND_MAX_TOP_N: Largest list a request may ask for (default: 50)
//   - RECOMMEND_WARMING_THRESHOLD: Activity count where the warming tier starts (default: 10)
//   - RECOMMEND_ESTABLISHED_THRESHOLD: Activity count where the established tier starts (default: 50)
//   - RECOMMEND_REQUEST_TIMEOUT: Deadline for one recommendation request (default: 10s)
//   - RECOMMEND_BREAKER_ENABLED: Guard the collaborative stage with a circuit breaker (default: true)
type RecommendConfig struct {
	CandidatePoolSize    int           `koanf:"candidate_pool_size"`
	NeighborsK           int           `koanf:"neighbors_k"`
	Workers              int           `koanf:"workers"`
	DefaultTopN          int           `koanf:"default_top_n"`
	MaxTopN              int           `koanf:"max_top_n"`
	ContentTopN          int           `koanf:"content_top_n"`
	CollaborativeTopN    int           `koanf:"collaborative_top_n"`
	WarmingThreshold     int           `koanf:"warming_threshold"`
	EstablishedThreshold int           `koanf:"established_threshold"`
	RequestTimeout       time.Duration `koanf:"request_timeout"`

	BreakerEnabled      bool          `koanf:"breaker_enabled"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
}

// Load reads configuration from all sources in order of precedence:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
