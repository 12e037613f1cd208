// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/hobbyrec/internal/config"
	"github.com/tomtom215/hobbyrec/internal/recommend"
)

// initRecommend builds the engine and attaches the DuckDB data provider.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, provider recommend.DataProvider, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := buildEngineConfig(&cfg.Recommend)

	logger.Info().
		Int("neighbors_k", engineCfg.Neighbors.K).
		Int("candidate_pool", engineCfg.Neighbors.CandidatePoolSize).
		Int("warming_threshold", engineCfg.Hybrid.WarmingThreshold).
		Int("established_threshold", engineCfg.Hybrid.EstablishedThreshold).
		Bool("breaker_enabled", engineCfg.Breaker.Enabled).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	engine.SetDataProvider(provider)

	return engine, nil
}

// buildEngineConfig overlays the service configuration on the engine
// defaults. Zero values keep the default.
func buildEngineConfig(rc *config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()

	setInt(&cfg.Neighbors.CandidatePoolSize, rc.CandidatePoolSize)
	setInt(&cfg.Neighbors.K, rc.NeighborsK)
	setInt(&cfg.Neighbors.Workers, rc.Workers)
	setInt(&cfg.Limits.DefaultTopN, rc.DefaultTopN)
	setInt(&cfg.Limits.MaxTopN, rc.MaxTopN)
	setInt(&cfg.Content.TopN, rc.ContentTopN)
	setInt(&cfg.Collaborative.TopN, rc.CollaborativeTopN)
	setInt(&cfg.Hybrid.WarmingThreshold, rc.WarmingThreshold)
	setInt(&cfg.Hybrid.EstablishedThreshold, rc.EstablishedThreshold)

	if rc.RequestTimeout > 0 {
		cfg.Limits.RequestTimeout = rc.RequestTimeout
	}

	cfg.Breaker.Enabled = rc.BreakerEnabled
	if rc.BreakerTimeout > 0 {
		cfg.Breaker.Timeout = rc.BreakerTimeout
	}
	if rc.BreakerFailureRatio > 0 {
		cfg.Breaker.FailureRatio = rc.BreakerFailureRatio
	}
	if rc.BreakerMinRequests > 0 {
		cfg.Breaker.MinRequests = rc.BreakerMinRequests
	}

	return cfg
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
