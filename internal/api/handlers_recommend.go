// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/hobbyrec/internal/logging"
	"github.com/tomtom215/hobbyrec/internal/models"
	"github.com/tomtom215/hobbyrec/internal/recommend"
	"github.com/tomtom215/hobbyrec/internal/validation"
)

// Recommender is the part of the engine the HTTP layer calls.
type Recommender interface {
	GetHybridRecommendations(ctx context.Context, userID, topN int) (*recommend.Response, error)
	GetContentRecommendations(ctx context.Context, userID, topN int) (*recommend.Response, error)
	GetCollaborativeRecommendations(ctx context.Context, userID, topN int) (*recommend.CollaborativeResponse, error)
	FindSimilarUsers(ctx context.Context, userID int) ([]recommend.Neighbor, error)
	Stats() recommend.Stats
}

var _ Recommender = (*recommend.Engine)(nil)

// RecommendHandler handles recommendation API endpoints.
type RecommendHandler struct {
	engine      Recommender
	defaultTopN int
	maxTopN     int
	timeout     time.Duration
}

// NewRecommendHandler creates a handler using the engine limits.
func NewRecommendHandler(engine *recommend.Engine) *RecommendHandler {
	cfg := engine.Config()
	return newRecommendHandler(engine, cfg.Limits.DefaultTopN, cfg.Limits.MaxTopN, cfg.Limits.RequestTimeout)
}

func newRecommendHandler(engine Recommender, defaultTopN, maxTopN int, timeout time.Duration) *RecommendHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RecommendHandler{
		engine:      engine,
		defaultTopN: defaultTopN,
		maxTopN:     maxTopN,
		timeout:     timeout,
	}
}

// GetRecommendations handles GET /api/v1/recommendations/users/{userID}.
// A user without a survey gets 200 with an empty list and a message.
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r, req.UserID)
	defer cancel()

	resp, err := h.engine.GetHybridRecommendations(ctx, req.UserID, req.Limit)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: resp.Metadata.LatencyMS,
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// GetContentRecommendations handles GET /api/v1/recommendations/users/{userID}/content.
func (h *RecommendHandler) GetContentRecommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r, req.UserID)
	defer cancel()

	resp, err := h.engine.GetContentRecommendations(ctx, req.UserID, req.Limit)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: resp.Metadata.LatencyMS,
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// GetCollaborativeRecommendations handles
// GET /api/v1/recommendations/users/{userID}/collaborative.
func (h *RecommendHandler) GetCollaborativeRecommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	ctx, cancel := h.requestContext(r, req.UserID)
	defer cancel()

	resp, err := h.engine.GetCollaborativeRecommendations(ctx, req.UserID, req.Limit)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// GetNeighbors handles GET /api/v1/recommendations/users/{userID}/neighbors.
func (h *RecommendHandler) GetNeighbors(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&validation.RecommendationRequest{UserID: userID, Limit: 1}); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	start := time.Now()
	ctx, cancel := h.requestContext(r, userID)
	defer cancel()

	neighbors, err := h.engine.FindSimilarUsers(ctx, userID)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	if neighbors == nil {
		neighbors = []recommend.Neighbor{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"user_id":   userID,
			"neighbors": neighbors,
			"count":     len(neighbors),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// requestContext bounds an engine call by the handler timeout and tags
// its log lines with the user.
func (h *RecommendHandler) requestContext(r *http.Request, userID int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(logging.ContextWithUserID(r.Context(), userID), h.timeout)
}

// parseRequest reads and validates the user id and limit. It writes the
// 400 response itself and reports false when the request is invalid.
func (h *RecommendHandler) parseRequest(w http.ResponseWriter, r *http.Request) (*validation.RecommendationRequest, bool) {
	userID, err := parseUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return nil, false
	}

	limit, err := getIntParam(r, "limit", h.defaultTopN)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return nil, false
	}

	req := &validation.RecommendationRequest{UserID: userID, Limit: limit}
	if verr := validation.ValidateRecommendationRequest(req, h.maxTopN); verr != nil {
		respondAPIError(w, http.StatusBadRequest, toModelError(verr), nil)
		return nil, false
	}
	return req, true
}

// respondEngineError maps engine errors onto HTTP statuses.
func (h *RecommendHandler) respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrInvalidUserID), errors.Is(err, recommend.ErrInvalidTopN):
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, recommend.ErrNoDataProvider):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeUnavailable, "Recommendation engine is not ready", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, models.ErrCodeTimeout, "Recommendation request timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, models.ErrCodeRecommend, "Failed to generate recommendations", err)
	}
}
