// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Checkpointer flushes the DuckDB write-ahead log into the database file.
// Satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// maxCheckpointFailures is how many consecutive failed checkpoints the
// service tolerates before returning an error to its supervisor.
const maxCheckpointFailures = 3

// CheckpointService checkpoints DuckDB on a fixed interval so the WAL of a
// file-backed database stays small between restarts.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	logger   *slog.Logger
	name     string
}

// NewCheckpointService creates the service. A non-positive interval means 5m.
func NewCheckpointService(db Checkpointer, interval time.Duration, logger *slog.Logger) *CheckpointService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		logger:   logger,
		name:     "duckdb-checkpoint",
	}
}

// Serve implements suture.Service. A final checkpoint runs on shutdown.
func (s *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := s.db.Checkpoint(finalCtx); err != nil {
				s.logger.Warn("final checkpoint failed", "error", err)
			}
			cancel()
			return ctx.Err()

		case <-ticker.C:
			if err := s.db.Checkpoint(ctx); err != nil {
				failures++
				s.logger.Warn("checkpoint failed", "error", err, "consecutive_failures", failures)
				if failures >= maxCheckpointFailures {
					return fmt.Errorf("checkpoint failed %d times in a row: %w", failures, err)
				}
				continue
			}
			failures = 0
			s.logger.Debug("checkpoint complete")
		}
	}
}

// String names the service in supervisor logs.
func (s *CheckpointService) String() string {
	return s.name
}
