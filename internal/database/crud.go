// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/hobbyrec/internal/recommend"
)

// InsertUser inserts a platform user.
func (db *DB) InsertUser(ctx context.Context, userID int, name string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, name) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
		userID, name)
	if err != nil {
		return fmt.Errorf("insert user %d: %w", userID, err)
	}
	return nil
}

// InsertCatalogItem inserts or replaces a hobby in the catalog.
func (db *DB) InsertCatalogItem(ctx context.Context, item *recommend.CatalogItem) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO hobbies (id, name, category, indoor_outdoor, social_individual, budget, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			indoor_outdoor = excluded.indoor_outdoor,
			social_individual = excluded.social_individual,
			budget = excluded.budget,
			difficulty = excluded.difficulty`,
		item.ID, item.Name, item.Category, item.IndoorOutdoor, item.SocialIndividual, item.Budget, item.Difficulty)
	if err != nil {
		return fmt.Errorf("insert hobby %d: %w", item.ID, err)
	}
	return nil
}

// UpsertSurveyResponse stores a user's survey answers, replacing any earlier submission.
func (db *DB) UpsertSurveyResponse(ctx context.Context, survey *recommend.SurveyResponse) error {
	answers, err := json.Marshal(survey.Answers)
	if err != nil {
		return fmt.Errorf("marshal survey answers: %w", err)
	}

	updatedAt := survey.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO surveys (user_id, answers, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET answers = excluded.answers, updated_at = excluded.updated_at`,
		survey.UserID, string(answers), updatedAt)
	if err != nil {
		return fmt.Errorf("upsert survey for user %d: %w", survey.UserID, err)
	}
	return nil
}

// UpsertUserHobby links a user to a hobby with the given status.
func (db *DB) UpsertUserHobby(ctx context.Context, userID, hobbyID int, status string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO user_hobbies (user_id, hobby_id, status) VALUES (?, ?, ?)
		ON CONFLICT (user_id, hobby_id) DO UPDATE SET status = excluded.status`,
		userID, hobbyID, status)
	if err != nil {
		return fmt.Errorf("upsert user hobby %d/%d: %w", userID, hobbyID, err)
	}
	return nil
}

// InsertActivityEvent appends an event to the activity log.
func (db *DB) InsertActivityEvent(ctx context.Context, event *recommend.ActivityEvent) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO activity_logs (id, user_id, activity_type, target_id, created_at)
		VALUES (CAST(? AS UUID), ?, ?, ?, ?)`,
		uuid.New().String(), event.UserID, event.ActivityType, event.TargetID, createdAt)
	if err != nil {
		return fmt.Errorf("insert activity for user %d: %w", event.UserID, err)
	}
	return nil
}
