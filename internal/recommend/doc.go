// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package recommend implements the hybrid hobby recommendation engine.
//
// # Architecture
//
// A request flows through six components:
//
//   - BuildPreferenceProfile: survey answers to a five-axis preference profile
//   - ContentScorer: weighted attribute match of every catalog item (0-100)
//   - FeatureBuilder: profile plus behavior into a UserFeatureVector
//   - NeighborFinder: brute-force cosine KNN over a bounded candidate pool
//   - CollaborativeScorer: similarity-weighted votes from neighbors' hobbies
//   - HybridCombiner: activity-tiered fusion of both rankings
//
// All reads go through the DataProvider port. The engine keeps no model
// state, so two requests over unchanged data return identical rankings.
//
// # Cold Start
//
// Weighting depends on the number of activity events a user has logged:
//
//	< 10 events  content 0.7  collaborative 0.3  (cold_start)
//	< 50 events  content 0.6  collaborative 0.4  (warming)
//	otherwise    content 0.5  collaborative 0.5  (established)
//
// # Degradation
//
// A user without a survey receives an empty list and a guidance message.
// Any failure in the collaborative stage is logged and the request is served
// from content scores alone with Metadata.Degraded set. The stage runs behind
// a gobreaker circuit so a failing store is not hammered by every request.
// A neighbor candidate whose data cannot be read is skipped.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	engine.SetDataProvider(database.NewRecommendationDataProvider(db))
//
//	resp, err := engine.GetHybridRecommendations(ctx, userID, 6)
//
// # Thread Safety
//
// Engine is safe for concurrent use once the data provider is set.
package recommend
