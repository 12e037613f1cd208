// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/hobbyrec/internal/cache"
	"github.com/tomtom215/hobbyrec/internal/database"
	"github.com/tomtom215/hobbyrec/internal/logging"
	"github.com/tomtom215/hobbyrec/internal/models"
)

// Store is the database surface the health endpoints inspect.
type Store interface {
	Ping(ctx context.Context) error
	GetTableCounts(ctx context.Context) (*database.TableCounts, error)
}

var _ Store = (*database.DB)(nil)

// CatalogCacheReporter exposes catalog cache counters. ok is false when
// the cache is disabled.
type CatalogCacheReporter interface {
	CatalogCacheStats() (stats cache.Stats, ok bool)
}

var _ CatalogCacheReporter = (*database.RecommendationDataProvider)(nil)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	store     Store
	engine    Recommender
	catalog   CatalogCacheReporter
	version   string
	startTime time.Time
}

// NewHealthHandler creates a health handler. engine may be nil.
func NewHealthHandler(store Store, engine Recommender, version string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		engine:    engine,
		version:   version,
		startTime: time.Now(),
	}
}

// WithCatalogCache adds catalog cache counters to the readiness body.
func (h *HealthHandler) WithCatalogCache(c CatalogCacheReporter) *HealthHandler {
	h.catalog = c
	return h
}

// HealthLive handles liveness probe requests.
// Always returns 200 while the process can serve HTTP.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.HealthStatus{
			Status:  "alive",
			Version: h.version,
			Uptime:  time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 when DuckDB does not answer a ping.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbConnected := false
	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness ping failed")
		} else {
			dbConnected = true
		}
	}

	health := models.HealthStatus{
		Status:            "ready",
		Version:           h.version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	statusCode := http.StatusOK
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		health.Status = "not_ready"
	} else if counts, err := h.store.GetTableCounts(ctx); err == nil {
		health.Counts = counts
	}

	if h.engine != nil {
		health.Engine = h.engine.Stats()
	}
	if h.catalog != nil {
		if stats, ok := h.catalog.CatalogCacheStats(); ok {
			health.CatalogCache = stats
		}
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: health.Status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}
