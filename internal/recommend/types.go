// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"context"
	"time"
)

// Location values for CatalogItem.IndoorOutdoor.
const (
	LocationIndoor  = "indoor"
	LocationOutdoor = "outdoor"
	LocationBoth    = "both"
)

// Sociality values for CatalogItem.SocialIndividual.
const (
	SocialitySocial     = "social"
	SocialityIndividual = "individual"
	SocialityBoth       = "both"
)

// Budget values for CatalogItem.Budget.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Interaction statuses for InteractionRecord.Status.
const (
	StatusInterested = "interested"
	StatusLearning   = "learning"
	StatusCompleted  = "completed"
)

// Activity types counted by the feature vector builder.
const (
	ActivityViewHobby        = "view_hobby"
	ActivityAddHobbyInterest = "add_hobby_interest"
)

// SurveyResponse holds a user's onboarding survey answers.
type SurveyResponse struct {
	// UserID is the user who answered.
	UserID int `json:"user_id"`

	// Answers maps a question id ("1".."8") to an ordinal answer (1-5).
	Answers map[string]int `json:"answers"`

	// UpdatedAt is when the survey was last submitted.
	UpdatedAt time.Time `json:"updated_at"`
}

// PreferenceProfile is the normalized form of a survey.
// Every axis is in [0, 1].
type PreferenceProfile struct {
	Outdoor  float64 `json:"outdoor"`
	Social   float64 `json:"social"`
	Creative float64 `json:"creative"`
	Physical float64 `json:"physical"`
	Budget   float64 `json:"budget"`

	// DifficultyPreference is derived from Physical and Creative, in {1,2,3,4}.
	DifficultyPreference int `json:"difficulty_preference"`
}

// CatalogItem is a hobby in the catalog.
type CatalogItem struct {
	// ID is the hobby identifier.
	ID int `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Category is the hobby category (e.g. 스포츠, 미술).
	Category string `json:"category"`

	// IndoorOutdoor is one of indoor, outdoor, both.
	IndoorOutdoor string `json:"indoor_outdoor"`

	// SocialIndividual is one of social, individual, both.
	SocialIndividual string `json:"social_individual"`

	// Budget is one of low, medium, high.
	Budget string `json:"budget"`

	// Difficulty is an integer in [1, 5].
	Difficulty int `json:"difficulty"`
}

// InteractionRecord links a user to a catalog item.
type InteractionRecord struct {
	UserID int    `json:"user_id"`
	ItemID int    `json:"item_id"`
	Status string `json:"status"`

	// Category is the joined category of the item. Empty if unknown.
	Category string `json:"category,omitempty"`
}

// ActivityEvent is one entry of the append-only activity log.
type ActivityEvent struct {
	UserID       int       `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	TargetID     int       `json:"target_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserFeatureVector is the comparable summary of a user used for KNN.
type UserFeatureVector struct {
	UserID int `json:"user_id"`

	// Profile is the survey profile, or the all-0.5 profile when no survey exists.
	Profile PreferenceProfile `json:"profile"`

	// CategoryShare maps category to the fraction of the user's interactions in it.
	CategoryShare map[string]float64 `json:"category_share"`

	TotalActivities  int `json:"total_activities"`
	ViewHobbyCount   int `json:"view_hobby_count"`
	AddInterestCount int `json:"add_interest_count"`
	CompletedHobbies int `json:"completed_hobbies"`
}

// Neighbor is a similar user.
type Neighbor struct {
	UserID     int     `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// ContentScore is the content-based score of one item.
type ContentScore struct {
	Item CatalogItem `json:"item"`

	// MatchScore is in [0, 100].
	MatchScore int `json:"match_score"`

	// Reasons holds at most three human-readable reasons.
	Reasons []string `json:"reasons"`
}

// CollaborativeScore is the neighbor-based score of one item.
type CollaborativeScore struct {
	Item CatalogItem `json:"item"`

	// Score is the accumulated neighbor weight divided by the neighbor count.
	Score float64 `json:"score"`

	// NeighborCount is how many neighbors contributed.
	NeighborCount int `json:"neighbor_count"`

	Reason string `json:"reason"`
}

// ScoreBreakdown holds diagnostic sub-scores as integer percentages.
type ScoreBreakdown struct {
	Content       int `json:"content"`
	Collaborative int `json:"collaborative"`
	Hybrid        int `json:"hybrid"`
}

// Recommendation is a ranked catalog item with its justification.
type Recommendation struct {
	Item CatalogItem `json:"item"`

	// MatchScore is the display score in [0, 100].
	MatchScore int `json:"match_score"`

	// Reasons holds at most three human-readable reasons.
	Reasons []string `json:"reasons"`

	// Scores are the per-signal diagnostics.
	Scores ScoreBreakdown `json:"scores"`

	// hybrid is the unrounded score used for ranking.
	hybrid float64
}

// WeightingTier names an activity tier.
type WeightingTier string

// Weighting tiers.
const (
	TierColdStart   WeightingTier = "cold_start"
	TierWarming     WeightingTier = "warming"
	TierEstablished WeightingTier = "established"
	TierContentOnly WeightingTier = "content_only"
)

// Weights is the selected weight pair for a request.
type Weights struct {
	Content       float64       `json:"content"`
	Collaborative float64       `json:"collaborative"`
	Tier          WeightingTier `json:"tier"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	// RequestID is the request identifier for tracing.
	RequestID string `json:"request_id,omitempty"`

	// UserID is the user the list was built for.
	UserID int `json:"user_id"`

	// ContentCount is the number of content results considered.
	ContentCount int `json:"content_count"`

	// CollaborativeCount is the number of collaborative results considered.
	CollaborativeCount int `json:"collaborative_count"`

	// Weights is the weight pair actually applied.
	Weights Weights `json:"weights"`

	// WeightingTier is the activity tier of the user.
	WeightingTier WeightingTier `json:"weighting_tier"`

	// ActivityCount is the user's total activity events.
	ActivityCount int `json:"activity_count"`

	// Degraded is set when the collaborative stage failed and the
	// list is content-only.
	Degraded bool `json:"degraded,omitempty"`

	// LatencyMS is the processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// GeneratedAt is when the response was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Response is the result of a recommendation request.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        ResponseMetadata `json:"metadata"`

	// Message carries guidance for the caller, e.g. when no survey exists.
	Message string `json:"message,omitempty"`
}

// DataProvider is the read-only data access port of the engine.
type DataProvider interface {
	// GetSurveyResponse returns the user's survey, or nil when none exists.
	GetSurveyResponse(ctx context.Context, userID int) (*SurveyResponse, error)

	// GetAllCatalogItems returns the whole hobby catalog.
	GetAllCatalogItems(ctx context.Context) ([]CatalogItem, error)

	// GetUserInteractions returns the user's interactions joined with item category.
	GetUserInteractions(ctx context.Context, userID int) ([]InteractionRecord, error)

	// GetUserActivityEvents returns the user's activity log.
	GetUserActivityEvents(ctx context.Context, userID int) ([]ActivityEvent, error)

	// GetCandidateUserIDs returns up to limit user ids, excluding the given user.
	GetCandidateUserIDs(ctx context.Context, excludeUserID, limit int) ([]int, error)
}
