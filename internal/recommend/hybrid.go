// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import "sort"

// HybridCombiner fuses content and collaborative rankings.
//
// Weight selection is the cold-start policy: users with little activity lean
// on the survey, and collaborative influence grows as behavior accumulates.
//
//	activity < WarmingThreshold     -> ColdStart   (0.7 / 0.3)
//	activity < EstablishedThreshold -> Warming     (0.6 / 0.4)
//	otherwise                       -> Established (0.5 / 0.5)
type HybridCombiner struct {
	cfg HybridConfig
}

// NewHybridCombiner creates a combiner.
//
//nolint:gocritic // config is copied on construction
func NewHybridCombiner(cfg HybridConfig) *HybridCombiner {
	return &HybridCombiner{cfg: cfg}
}

// SelectWeights returns the weight pair for a user's activity count.
func (c *HybridCombiner) SelectWeights(activityCount int) Weights {
	switch {
	case activityCount < c.cfg.WarmingThreshold:
		return Weights{Content: c.cfg.ColdStart.Content, Collaborative: c.cfg.ColdStart.Collaborative, Tier: TierColdStart}
	case activityCount < c.cfg.EstablishedThreshold:
		return Weights{Content: c.cfg.Warming.Content, Collaborative: c.cfg.Warming.Collaborative, Tier: TierWarming}
	default:
		return Weights{Content: c.cfg.Established.Content, Collaborative: c.cfg.Established.Collaborative, Tier: TierEstablished}
	}
}

// ContentOnlyWeights is applied when the collaborative stage is unavailable.
func ContentOnlyWeights() Weights {
	return Weights{Content: 1, Collaborative: 0, Tier: TierContentOnly}
}

// Combine merges both rankings and returns the topN recommendations.
//
// Items in the content list score cw*content/100 + lw*collab (collab is 0
// when absent). Items only in the collaborative list score lw*collab.
// Reasons are the content reasons followed by the collaborative reason,
// capped at MaxReasons. Ties are ordered by item id.
//
//nolint:gocritic // Weights is a small value type
func (c *HybridCombiner) Combine(content []ContentScore, collab []CollaborativeScore, w Weights, topN int) []Recommendation {
	collabByID := make(map[int]*CollaborativeScore, len(collab))
	for i := range collab {
		collabByID[collab[i].Item.ID] = &collab[i]
	}

	recs := make([]Recommendation, 0, len(content)+len(collab))
	seen := make(map[int]bool, len(content))

	for i := range content {
		cs := &content[i]
		seen[cs.Item.ID] = true

		contentNorm := float64(cs.MatchScore) / 100
		collabScore := 0.0
		reasons := append([]string(nil), cs.Reasons...)
		if cb, ok := collabByID[cs.Item.ID]; ok {
			collabScore = cb.Score
			reasons = append(reasons, cb.Reason)
		}

		recs = append(recs, c.newRecommendation(cs.Item, cs.MatchScore, collabScore,
			w.Content*contentNorm+w.Collaborative*collabScore, reasons))
	}

	for i := range collab {
		cb := &collab[i]
		if seen[cb.Item.ID] {
			continue
		}
		recs = append(recs, c.newRecommendation(cb.Item, 0, cb.Score,
			w.Collaborative*cb.Score, []string{cb.Reason}))
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].hybrid != recs[j].hybrid {
			return recs[i].hybrid > recs[j].hybrid
		}
		return recs[i].Item.ID < recs[j].Item.ID
	})

	if topN > 0 && len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

//nolint:gocritic // CatalogItem is copied into the result
func (c *HybridCombiner) newRecommendation(item CatalogItem, contentPct int, collabScore, hybrid float64, reasons []string) Recommendation {
	if len(reasons) > c.cfg.MaxReasons {
		reasons = reasons[:c.cfg.MaxReasons]
	}
	hybridPct := toPercent(hybrid)
	return Recommendation{
		Item:       item,
		MatchScore: hybridPct,
		Reasons:    reasons,
		Scores: ScoreBreakdown{
			Content:       contentPct,
			Collaborative: toPercent(collabScore),
			Hybrid:        hybridPct,
		},
		hybrid: hybrid,
	}
}
