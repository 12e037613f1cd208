// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package database

import (
	"context"
	"fmt"
	"time"
)

// queryTimeout bounds every read issued on behalf of a recommendation.
const queryTimeout = 5 * time.Second

// ensureContext creates a context with 30-second timeout if none provided
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}

	return ctx, func() {}
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// TableCounts holds row counts of the read model tables.
type TableCounts struct {
	Users        int64 `json:"users"`
	Hobbies      int64 `json:"hobbies"`
	Surveys      int64 `json:"surveys"`
	UserHobbies  int64 `json:"user_hobbies"`
	ActivityLogs int64 `json:"activity_logs"`
}

// GetTableCounts returns the row count of every read model table.
func (db *DB) GetTableCounts(ctx context.Context) (*TableCounts, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM hobbies),
			(SELECT COUNT(*) FROM surveys),
			(SELECT COUNT(*) FROM user_hobbies),
			(SELECT COUNT(*) FROM activity_logs)
	`

	var c TableCounts
	if err := db.conn.QueryRowContext(ctx, query).Scan(
		&c.Users, &c.Hobbies, &c.Surveys, &c.UserHobbies, &c.ActivityLogs,
	); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	return &c, nil
}
