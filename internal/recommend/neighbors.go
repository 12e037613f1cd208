// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/hobbyrec/internal/metrics"
)

// NeighborFinder finds the K users most similar to a target user by
// brute-force cosine similarity over a bounded candidate pool.
type NeighborFinder struct {
	provider DataProvider
	features *FeatureBuilder
	cfg      NeighborConfig
	logger   zerolog.Logger
}

// NewNeighborFinder creates a neighbor finder.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewNeighborFinder(provider DataProvider, cfg NeighborConfig, logger zerolog.Logger) *NeighborFinder {
	return &NeighborFinder{
		provider: provider,
		features: NewFeatureBuilder(provider),
		cfg:      cfg,
		logger:   logger,
	}
}

// Find returns up to K neighbors of target with strictly positive similarity,
// ordered by similarity descending. Ties keep candidate scan order.
//
// Candidate vectors are built concurrently with at most cfg.Workers in flight.
// A candidate whose vector cannot be built is logged and skipped. Only a
// failure to list candidates, or cancellation of ctx, fails the search.
func (f *NeighborFinder) Find(ctx context.Context, target *UserFeatureVector) ([]Neighbor, error) {
	candidateIDs, err := f.provider.GetCandidateUserIDs(ctx, target.UserID, f.cfg.CandidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("get candidate users: %w", err)
	}

	vectors, err := f.buildCandidateVectors(ctx, target.UserID, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("neighbor search canceled: %w", err)
	}

	neighbors := make([]Neighbor, 0, len(vectors))
	for _, v := range vectors {
		if v == nil {
			continue
		}
		sim := CosineSimilarity(target, v)
		if sim > 0 {
			neighbors = append(neighbors, Neighbor{UserID: v.UserID, Similarity: sim})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	if len(neighbors) > f.cfg.K {
		neighbors = neighbors[:f.cfg.K]
	}

	metrics.RecommendNeighborsFound.Observe(float64(len(neighbors)))
	return neighbors, nil
}

// buildCandidateVectors returns one vector per candidate id in the same order.
// Entries are nil for the target itself and for candidates that failed.
// The only error is cancellation of ctx.
func (f *NeighborFinder) buildCandidateVectors(ctx context.Context, targetID int, ids []int) ([]*UserFeatureVector, error) {
	vectors := make([]*UserFeatureVector, len(ids))

	var g errgroup.Group
	g.SetLimit(f.cfg.Workers)

	for i, id := range ids {
		if id == targetID {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := f.features.Build(ctx, id)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				metrics.RecommendCandidateFailures.Inc()
				f.logger.Warn().
					Int("candidate_user_id", id).
					Err(err).
					Msg("skipping neighbor candidate")
				return nil
			}
			vectors[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}
