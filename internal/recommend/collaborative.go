// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"context"
	"fmt"
	"sort"
)

// CollaborativeScorer turns a neighbor list into per-item scores.
//
// For every item a neighbor has and the target does not:
//
//	score(item) = Σ similarity(n) * boost(status) / len(neighbors)
//
// The divisor is the total neighbor count, not the number of neighbors that
// touched the item, so items with sparse coverage score lower.
type CollaborativeScorer struct {
	provider DataProvider
	boosts   StatusBoosts
}

// NewCollaborativeScorer creates a collaborative scorer.
//
//nolint:gocritic // config is copied on construction
func NewCollaborativeScorer(provider DataProvider, cfg CollaborativeConfig) *CollaborativeScorer {
	return &CollaborativeScorer{
		provider: provider,
		boosts:   cfg.Boosts,
	}
}

// Score fetches each neighbor's interactions and scores the items the target
// does not already have. Items missing from catalog are ignored. An empty
// neighbor list yields an empty result.
func (s *CollaborativeScorer) Score(
	ctx context.Context,
	targetInteractions []InteractionRecord,
	neighbors []Neighbor,
	catalog map[int]CatalogItem,
	topN int,
) ([]CollaborativeScore, error) {
	if len(neighbors) == 0 {
		return []CollaborativeScore{}, nil
	}

	neighborInteractions := make([][]InteractionRecord, len(neighbors))
	for i, n := range neighbors {
		records, err := s.provider.GetUserInteractions(ctx, n.UserID)
		if err != nil {
			return nil, fmt.Errorf("get interactions for neighbor %d: %w", n.UserID, err)
		}
		neighborInteractions[i] = records
	}

	return s.scoreNeighbors(targetInteractions, neighbors, neighborInteractions, catalog, topN), nil
}

type collabAccumulator struct {
	weight float64
	count  int
}

func (s *CollaborativeScorer) scoreNeighbors(
	targetInteractions []InteractionRecord,
	neighbors []Neighbor,
	neighborInteractions [][]InteractionRecord,
	catalog map[int]CatalogItem,
	topN int,
) []CollaborativeScore {
	known := make(map[int]bool, len(targetInteractions))
	for i := range targetInteractions {
		known[targetInteractions[i].ItemID] = true
	}

	acc := make(map[int]*collabAccumulator)
	for i, n := range neighbors {
		for _, rec := range neighborInteractions[i] {
			if known[rec.ItemID] {
				continue
			}
			a, ok := acc[rec.ItemID]
			if !ok {
				a = &collabAccumulator{}
				acc[rec.ItemID] = a
			}
			a.weight += n.Similarity * s.boost(rec.Status)
			a.count++
		}
	}

	scores := make([]CollaborativeScore, 0, len(acc))
	for itemID, a := range acc {
		item, ok := catalog[itemID]
		if !ok {
			continue
		}
		scores = append(scores, CollaborativeScore{
			Item:          item,
			Score:         a.weight / float64(len(neighbors)),
			NeighborCount: a.count,
			Reason:        neighborReason(a.count),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Item.ID < scores[j].Item.ID
	})

	if topN > 0 && len(scores) > topN {
		scores = scores[:topN]
	}
	return scores
}

func (s *CollaborativeScorer) boost(status string) float64 {
	switch status {
	case StatusCompleted:
		return s.boosts.Completed
	case StatusLearning:
		return s.boosts.Learning
	default:
		return s.boosts.Other
	}
}

func neighborReason(count int) string {
	if count == 1 {
		return "1 user with similar interests enjoys this hobby"
	}
	return fmt.Sprintf("%d users with similar interests enjoy this hobby", count)
}
