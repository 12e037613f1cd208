// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"context"
	"fmt"
)

// FeatureBuilder builds UserFeatureVectors from the data provider.
type FeatureBuilder struct {
	provider DataProvider
}

// NewFeatureBuilder creates a feature builder reading from provider.
func NewFeatureBuilder(provider DataProvider) *FeatureBuilder {
	return &FeatureBuilder{provider: provider}
}

// Build reads a user's survey, interactions and activity events and
// aggregates them into a feature vector. Missing data yields default or
// zero components. Only store failures are returned as errors.
func (b *FeatureBuilder) Build(ctx context.Context, userID int) (*UserFeatureVector, error) {
	survey, err := b.provider.GetSurveyResponse(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get survey for user %d: %w", userID, err)
	}

	interactions, err := b.provider.GetUserInteractions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get interactions for user %d: %w", userID, err)
	}

	events, err := b.provider.GetUserActivityEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get activity events for user %d: %w", userID, err)
	}

	return BuildFeatureVector(userID, survey, interactions, events), nil
}

// BuildFeatureVector aggregates already-fetched user data into a feature vector.
func BuildFeatureVector(userID int, survey *SurveyResponse, interactions []InteractionRecord, events []ActivityEvent) *UserFeatureVector {
	v := &UserFeatureVector{
		UserID:          userID,
		Profile:         BuildPreferenceProfile(survey),
		CategoryShare:   make(map[string]float64),
		TotalActivities: len(events),
	}

	for i := range events {
		switch events[i].ActivityType {
		case ActivityViewHobby:
			v.ViewHobbyCount++
		case ActivityAddHobbyInterest:
			v.AddInterestCount++
		}
	}

	counts := make(map[string]int)
	for i := range interactions {
		if interactions[i].Status == StatusCompleted {
			v.CompletedHobbies++
		}
		if interactions[i].Category != "" {
			counts[interactions[i].Category]++
		}
	}

	total := len(interactions)
	if total < 1 {
		total = 1
	}
	for category, n := range counts {
		v.CategoryShare[category] = float64(n) / float64(total)
	}

	return v
}
