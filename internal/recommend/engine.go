// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/hobbyrec/internal/logging"
	"github.com/tomtom215/hobbyrec/internal/metrics"
)

// Recommendation kinds used for logging and metrics.
const (
	kindHybrid        = "hybrid"
	kindContent       = "content"
	kindCollaborative = "collaborative"
)

// Engine orchestrates the hybrid recommendation pipeline.
//
// The engine holds no per-request state: every request reads the store
// through the DataProvider and recomputes its result, so concurrent requests
// do not interfere and repeated requests over unchanged data return
// identical output.
type Engine struct {
	config       *Config
	logger       zerolog.Logger
	dataProvider DataProvider

	content  *ContentScorer
	combiner *HybridCombiner
	breaker  *stageBreaker

	requestCount  atomic.Int64
	degradedCount atomic.Int64
	errorCount    atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests     int64  `json:"requests"`
	Degraded     int64  `json:"degraded"`
	Errors       int64  `json:"errors"`
	BreakerState string `json:"breaker_state"`
}

// CollaborativeResponse is the result of a collaborative-only request.
type CollaborativeResponse struct {
	Items     []CollaborativeScore `json:"items"`
	Neighbors []Neighbor           `json:"neighbors"`
	UserID    int                  `json:"user_id"`
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger = logger.With().Str("component", "recommend").Logger()

	return &Engine{
		config:   cfg,
		logger:   logger,
		content:  NewContentScorer(cfg.Content),
		combiner: NewHybridCombiner(cfg.Hybrid),
		breaker:  newStageBreaker(cfg.Breaker, logger),
	}, nil
}

// SetDataProvider sets the data provider. It must be called before any
// recommendation request.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.dataProvider = dp
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:     e.requestCount.Load(),
		Degraded:     e.degradedCount.Load(),
		Errors:       e.errorCount.Load(),
		BreakerState: e.breaker.State(),
	}
}

// userBase is the data every recommendation kind reads first.
type userBase struct {
	survey *SurveyResponse
	items  []CatalogItem
	events []ActivityEvent
}

// GetHybridRecommendations returns the topN hybrid recommendations for a user.
//
// A user without a survey receives an empty list and a guidance message. A
// failure anywhere in the collaborative stage is logged and the list falls
// back to content-only ranking with Metadata.Degraded set. Only failures to
// read the survey, catalog or activity log are returned as errors.
func (e *Engine) GetHybridRecommendations(ctx context.Context, userID, topN int) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	topN, err := e.prepare(userID, topN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	logger := e.createRequestLogger(ctx, kindHybrid, userID)
	logger.Debug().Int("top_n", topN).Msg("processing recommendation request")

	base, err := e.loadBase(ctx, userID)
	if err != nil {
		e.recordError(kindHybrid, start)
		return nil, err
	}

	if base.survey == nil {
		logger.Info().Msg("no survey on record, returning guidance")
		metrics.RecordRecommendation(kindHybrid, metrics.OutcomeMissingSurvey, time.Since(start))
		return e.missingSurveyResponse(ctx, userID, start), nil
	}

	activityCount := len(base.events)
	weights := e.combiner.SelectWeights(activityCount)
	tier := weights.Tier

	profile := BuildPreferenceProfile(base.survey)
	contentScores := e.content.ScoreAll(profile, base.items, max(e.config.Content.TopN, topN))

	outcome := metrics.OutcomeOK
	collab, err := e.runCollaborativeStage(ctx, userID, base, max(e.config.Collaborative.TopN, topN))
	var collabScores []CollaborativeScore
	if err != nil {
		// Collaborative failures never reach the caller.
		logger.Warn().Err(err).Msg("collaborative stage failed, falling back to content-only recommendations")
		e.degradedCount.Add(1)
		outcome = metrics.OutcomeDegraded
		weights = ContentOnlyWeights()
	} else {
		collabScores = collab.scores
	}

	recs := e.combiner.Combine(contentScores, collabScores, weights, topN)

	resp := &Response{
		Recommendations: recs,
		Metadata: ResponseMetadata{
			RequestID:          logging.RequestIDFromContext(ctx),
			UserID:             userID,
			ContentCount:       len(contentScores),
			CollaborativeCount: len(collabScores),
			Weights:            weights,
			WeightingTier:      tier,
			ActivityCount:      activityCount,
			Degraded:           err != nil,
			LatencyMS:          time.Since(start).Milliseconds(),
			GeneratedAt:        time.Now().UTC(),
		},
	}

	metrics.RecordRecommendation(kindHybrid, outcome, time.Since(start))
	logger.Debug().
		Int("content_count", resp.Metadata.ContentCount).
		Int("collaborative_count", resp.Metadata.CollaborativeCount).
		Str("tier", string(tier)).
		Int("returned", len(recs)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// GetContentRecommendations returns the topN content-only recommendations.
// The missing-survey contract matches GetHybridRecommendations.
func (e *Engine) GetContentRecommendations(ctx context.Context, userID, topN int) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	topN, err := e.prepare(userID, topN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	logger := e.createRequestLogger(ctx, kindContent, userID)

	base, err := e.loadBase(ctx, userID)
	if err != nil {
		e.recordError(kindContent, start)
		return nil, err
	}

	if base.survey == nil {
		logger.Info().Msg("no survey on record, returning guidance")
		metrics.RecordRecommendation(kindContent, metrics.OutcomeMissingSurvey, time.Since(start))
		return e.missingSurveyResponse(ctx, userID, start), nil
	}

	profile := BuildPreferenceProfile(base.survey)
	contentScores := e.content.ScoreAll(profile, base.items, topN)
	weights := ContentOnlyWeights()

	resp := &Response{
		Recommendations: e.combiner.Combine(contentScores, nil, weights, topN),
		Metadata: ResponseMetadata{
			RequestID:     logging.RequestIDFromContext(ctx),
			UserID:        userID,
			ContentCount:  len(contentScores),
			Weights:       weights,
			WeightingTier: e.combiner.SelectWeights(len(base.events)).Tier,
			ActivityCount: len(base.events),
			LatencyMS:     time.Since(start).Milliseconds(),
			GeneratedAt:   time.Now().UTC(),
		},
	}

	metrics.RecordRecommendation(kindContent, metrics.OutcomeOK, time.Since(start))
	return resp, nil
}

// GetCollaborativeRecommendations returns the topN collaborative scores and
// the neighbors they came from. Unlike the hybrid path, failures are
// returned to the caller.
func (e *Engine) GetCollaborativeRecommendations(ctx context.Context, userID, topN int) (*CollaborativeResponse, error) {
	start := time.Now()
	e.requestCount.Add(1)

	topN, err := e.prepare(userID, topN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	base, err := e.loadBase(ctx, userID)
	if err != nil {
		e.recordError(kindCollaborative, start)
		return nil, err
	}

	out, err := e.runCollaborativeStage(ctx, userID, base, topN)
	if err != nil {
		e.recordError(kindCollaborative, start)
		return nil, fmt.Errorf("collaborative stage: %w", err)
	}

	metrics.RecordRecommendation(kindCollaborative, metrics.OutcomeOK, time.Since(start))
	return &CollaborativeResponse{
		Items:     out.scores,
		Neighbors: out.neighbors,
		UserID:    userID,
	}, nil
}

// FindSimilarUsers returns the nearest neighbors of a user.
func (e *Engine) FindSimilarUsers(ctx context.Context, userID int) ([]Neighbor, error) {
	if e.dataProvider == nil {
		return nil, ErrNoDataProvider
	}
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUserID, userID)
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	logger := e.createRequestLogger(ctx, "neighbors", userID)
	target, err := NewFeatureBuilder(e.dataProvider).Build(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("build feature vector: %w", err)
	}

	finder := NewNeighborFinder(e.dataProvider, e.config.Neighbors, logger)
	return finder.Find(ctx, target)
}

// prepare validates the request and applies the default list size.
func (e *Engine) prepare(userID, topN int) (int, error) {
	if e.dataProvider == nil {
		e.errorCount.Add(1)
		return 0, ErrNoDataProvider
	}
	if userID <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUserID, userID)
	}
	if topN == 0 {
		topN = e.config.Limits.DefaultTopN
	}
	if topN < 0 || topN > e.config.Limits.MaxTopN {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTopN, topN, e.config.Limits.MaxTopN)
	}
	return topN, nil
}

// loadBase reads the survey, catalog and activity log of a user.
func (e *Engine) loadBase(ctx context.Context, userID int) (*userBase, error) {
	survey, err := e.dataProvider.GetSurveyResponse(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}

	items, err := e.dataProvider.GetAllCatalogItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	events, err := e.dataProvider.GetUserActivityEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get activity events: %w", err)
	}

	return &userBase{survey: survey, items: items, events: events}, nil
}

// runCollaborativeStage builds the target vector, finds neighbors and scores
// their items, all behind the stage circuit breaker.
func (e *Engine) runCollaborativeStage(ctx context.Context, userID int, base *userBase, topN int) (*collaborativeOutcome, error) {
	logger := e.createRequestLogger(ctx, kindCollaborative, userID)

	return e.breaker.execute(func() (*collaborativeOutcome, error) {
		out, err := e.collaborativeStage(ctx, userID, base, topN, logger)
		if err != nil && ctx.Err() != nil {
			// Store drivers do not always wrap the context error.
			return nil, fmt.Errorf("%w: %w", ctx.Err(), err)
		}
		return out, err
	})
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) collaborativeStage(ctx context.Context, userID int, base *userBase, topN int, logger zerolog.Logger) (*collaborativeOutcome, error) {
	interactions, err := e.dataProvider.GetUserInteractions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get interactions: %w", err)
	}

	target := BuildFeatureVector(userID, base.survey, interactions, base.events)
	neighbors, err := NewNeighborFinder(e.dataProvider, e.config.Neighbors, logger).Find(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("find neighbors: %w", err)
	}

	catalog := make(map[int]CatalogItem, len(base.items))
	for _, item := range base.items {
		catalog[item.ID] = item
	}

	scorer := NewCollaborativeScorer(e.dataProvider, e.config.Collaborative)
	scores, err := scorer.Score(ctx, interactions, neighbors, catalog, topN)
	if err != nil {
		return nil, fmt.Errorf("score neighbor items: %w", err)
	}

	logger.Debug().
		Int("neighbors", len(neighbors)).
		Int("scored_items", len(scores)).
		Msg("collaborative stage complete")

	return &collaborativeOutcome{neighbors: neighbors, scores: scores}, nil
}

func (e *Engine) missingSurveyResponse(ctx context.Context, userID int, start time.Time) *Response {
	return &Response{
		Recommendations: []Recommendation{},
		Message:         MissingSurveyMessage,
		Metadata: ResponseMetadata{
			RequestID:   logging.RequestIDFromContext(ctx),
			UserID:      userID,
			LatencyMS:   time.Since(start).Milliseconds(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}

func (e *Engine) recordError(kind string, start time.Time) {
	e.errorCount.Add(1)
	metrics.RecordRecommendation(kind, metrics.OutcomeError, time.Since(start))
}

// createRequestLogger creates a logger with request context.
func (e *Engine) createRequestLogger(ctx context.Context, kind string, userID int) zerolog.Logger {
	return e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("kind", kind).
		Int("user_id", userID).
		Logger()
}
