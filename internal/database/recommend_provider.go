// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/hobbyrec/internal/cache"
	"github.com/tomtom215/hobbyrec/internal/logging"
	"github.com/tomtom215/hobbyrec/internal/metrics"
	"github.com/tomtom215/hobbyrec/internal/recommend"
)

// catalogCacheKey is the single key of the catalog cache.
const catalogCacheKey = "hobbies"

// RecommendationDataProvider implements recommend.DataProvider using the database.
type RecommendationDataProvider struct {
	db      *DB
	logger  zerolog.Logger
	catalog *cache.TTL[string, []recommend.CatalogItem]
}

// ProviderOption configures a RecommendationDataProvider.
type ProviderOption func(*RecommendationDataProvider)

// WithCatalogCache keeps the hobby catalog in memory for ttl. Catalog
// writes made through the same DB are not observed until the entry expires.
func WithCatalogCache(ttl time.Duration) ProviderOption {
	return func(p *RecommendationDataProvider) {
		if ttl > 0 {
			p.catalog = cache.NewTTL[string, []recommend.CatalogItem](ttl)
		}
	}
}

// NewRecommendationDataProvider creates a new data provider.
func NewRecommendationDataProvider(db *DB, opts ...ProviderOption) *RecommendationDataProvider {
	p := &RecommendationDataProvider{
		db:     db,
		logger: logging.WithComponent("recommend-store"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CatalogCacheStats reports catalog cache counters. ok is false when the
// cache is disabled.
func (p *RecommendationDataProvider) CatalogCacheStats() (stats cache.Stats, ok bool) {
	if p.catalog == nil {
		return cache.Stats{}, false
	}
	return p.catalog.GetStats(), true
}

// GetSurveyResponse implements recommend.DataProvider.
// It returns (nil, nil) when the user has not answered the survey.
func (p *RecommendationDataProvider) GetSurveyResponse(ctx context.Context, userID int) (*recommend.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	var (
		answers   string
		updatedAt time.Time
	)
	err := p.db.conn.QueryRowContext(ctx,
		`SELECT answers, updated_at FROM surveys WHERE user_id = ?`, userID,
	).Scan(&answers, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", "surveys", time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordDBQuery("select", "surveys", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query survey for user %d: %w", userID, err)
	}

	survey := &recommend.SurveyResponse{
		UserID:    userID,
		UpdatedAt: updatedAt,
	}
	if err := json.Unmarshal([]byte(answers), &survey.Answers); err != nil {
		return nil, fmt.Errorf("decode survey answers for user %d: %w", userID, err)
	}
	return survey, nil
}

// GetAllCatalogItems implements recommend.DataProvider.
// Callers receive their own copy when the catalog cache is enabled.
func (p *RecommendationDataProvider) GetAllCatalogItems(ctx context.Context) ([]recommend.CatalogItem, error) {
	if p.catalog != nil {
		items, ok := p.catalog.Get(catalogCacheKey)
		metrics.RecordCatalogCacheLookup(ok)
		if ok {
			return append([]recommend.CatalogItem(nil), items...), nil
		}
	}

	items, err := p.queryCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if p.catalog != nil {
		p.catalog.Set(catalogCacheKey, append([]recommend.CatalogItem(nil), items...))
	}
	return items, nil
}

func (p *RecommendationDataProvider) queryCatalog(ctx context.Context) ([]recommend.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := p.db.conn.QueryContext(ctx, `
		SELECT id, name, category, indoor_outdoor, social_individual, budget, difficulty
		FROM hobbies
		ORDER BY id
	`)
	if err != nil {
		metrics.RecordDBQuery("select", "hobbies", time.Since(start), err)
		return nil, fmt.Errorf("query hobbies: %w", err)
	}
	defer closeWithLog(rows, p.logger, "rows")

	var items []recommend.CatalogItem
	for rows.Next() {
		var item recommend.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category,
			&item.IndoorOutdoor, &item.SocialIndividual, &item.Budget, &item.Difficulty); err != nil {
			return nil, fmt.Errorf("scan hobby: %w", err)
		}
		items = append(items, item)
	}
	err = rows.Err()
	metrics.RecordDBQuery("select", "hobbies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate hobbies: %w", err)
	}
	return items, nil
}

// GetUserInteractions implements recommend.DataProvider.
// Each record carries the category of its hobby; a link to a hobby that no
// longer exists yields an empty category.
func (p *RecommendationDataProvider) GetUserInteractions(ctx context.Context, userID int) ([]recommend.InteractionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := p.db.conn.QueryContext(ctx, `
		SELECT uh.user_id, uh.hobby_id, uh.status, COALESCE(h.category, '') AS category
		FROM user_hobbies uh
		LEFT JOIN hobbies h ON h.id = uh.hobby_id
		WHERE uh.user_id = ?
		ORDER BY uh.hobby_id
	`, userID)
	if err != nil {
		metrics.RecordDBQuery("select", "user_hobbies", time.Since(start), err)
		return nil, fmt.Errorf("query interactions for user %d: %w", userID, err)
	}
	defer closeWithLog(rows, p.logger, "rows")

	var records []recommend.InteractionRecord
	for rows.Next() {
		var r recommend.InteractionRecord
		if err := rows.Scan(&r.UserID, &r.ItemID, &r.Status, &r.Category); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		records = append(records, r)
	}
	err = rows.Err()
	metrics.RecordDBQuery("select", "user_hobbies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return records, nil
}

// GetUserActivityEvents implements recommend.DataProvider.
func (p *RecommendationDataProvider) GetUserActivityEvents(ctx context.Context, userID int) ([]recommend.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := p.db.conn.QueryContext(ctx, `
		SELECT user_id, activity_type, COALESCE(target_id, 0) AS target_id, created_at
		FROM activity_logs
		WHERE user_id = ?
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		metrics.RecordDBQuery("select", "activity_logs", time.Since(start), err)
		return nil, fmt.Errorf("query activity for user %d: %w", userID, err)
	}
	defer closeWithLog(rows, p.logger, "rows")

	var events []recommend.ActivityEvent
	for rows.Next() {
		var e recommend.ActivityEvent
		if err := rows.Scan(&e.UserID, &e.ActivityType, &e.TargetID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		events = append(events, e)
	}
	err = rows.Err()
	metrics.RecordDBQuery("select", "activity_logs", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return events, nil
}

// GetCandidateUserIDs implements recommend.DataProvider.
// Candidates are returned in ascending id order so the pool is stable
// across requests.
func (p *RecommendationDataProvider) GetCandidateUserIDs(ctx context.Context, excludeUserID, limit int) ([]int, error) {
	if limit <= 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := p.db.conn.QueryContext(ctx, `
		SELECT id FROM users
		WHERE id <> ?
		ORDER BY id
		LIMIT ?
	`, excludeUserID, limit)
	if err != nil {
		metrics.RecordDBQuery("select", "users", time.Since(start), err)
		return nil, fmt.Errorf("query candidate users: %w", err)
	}
	defer closeWithLog(rows, p.logger, "rows")

	ids := make([]int, 0, limit)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan candidate user: %w", err)
		}
		ids = append(ids, id)
	}
	err = rows.Err()
	metrics.RecordDBQuery("select", "users", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate candidate users: %w", err)
	}
	return ids, nil
}

// Ensure interface compliance.
var _ recommend.DataProvider = (*RecommendationDataProvider)(nil)
