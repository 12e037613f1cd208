// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
database_schema.go - Database Schema Management

The schema is the read model of the recommendation engine:
  - users: platform users that may serve as neighbor candidates
  - hobbies: the hobby catalog with its content attributes
  - surveys: one onboarding survey per user, answers stored as JSON text
  - user_hobbies: user to hobby links with a progress status
  - activity_logs: append-only activity events (views, interest adds)

Writes happen only through the seed and test helpers in crud.go.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// tableCreationQueries holds the table creation SQL statements
var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS hobbies (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		indoor_outdoor TEXT NOT NULL CHECK (indoor_outdoor IN ('indoor', 'outdoor', 'both')),
		social_individual TEXT NOT NULL CHECK (social_individual IN ('social', 'individual', 'both')),
		budget TEXT NOT NULL CHECK (budget IN ('low', 'medium', 'high')),
		difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 5)
	)`,

	`CREATE TABLE IF NOT EXISTS surveys (
		user_id INTEGER PRIMARY KEY,
		answers TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_hobbies (
		user_id INTEGER NOT NULL,
		hobby_id INTEGER NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('interested', 'learning', 'completed')),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, hobby_id)
	)`,

	`CREATE TABLE IF NOT EXISTS activity_logs (
		id UUID PRIMARY KEY,
		user_id INTEGER NOT NULL,
		activity_type TEXT NOT NULL,
		target_id INTEGER,
		created_at TIMESTAMP NOT NULL
	)`,
}

// createIndexes creates the secondary indexes used by the read queries
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute index query: %s: %w", query, err)
		}
	}

	return nil
}

var indexQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_hobbies_category ON hobbies(category)`,
	`CREATE INDEX IF NOT EXISTS idx_user_hobbies_user ON user_hobbies(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_user ON activity_logs(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_user_type ON activity_logs(user_id, activity_type)`,
}
