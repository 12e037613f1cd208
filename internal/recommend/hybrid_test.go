// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"slices"
	"testing"
)

func TestHybridCombiner_SelectWeights(t *testing.T) {
	t.Parallel()

	c := NewHybridCombiner(DefaultConfig().Hybrid)

	tests := []struct {
		activity    int
		wantContent float64
		wantCollab  float64
		wantTier    WeightingTier
	}{
		{0, 0.7, 0.3, TierColdStart},
		{9, 0.7, 0.3, TierColdStart},
		{10, 0.6, 0.4, TierWarming},
		{49, 0.6, 0.4, TierWarming},
		{50, 0.5, 0.5, TierEstablished},
		{75, 0.5, 0.5, TierEstablished},
		{10000, 0.5, 0.5, TierEstablished},
	}

	for _, tt := range tests {
		w := c.SelectWeights(tt.activity)
		if w.Content != tt.wantContent || w.Collaborative != tt.wantCollab || w.Tier != tt.wantTier {
			t.Errorf("SelectWeights(%d) = %+v, want %v/%v %s",
				tt.activity, w, tt.wantContent, tt.wantCollab, tt.wantTier)
		}
	}
}

func TestHybridCombiner_Combine(t *testing.T) {
	t.Parallel()

	catalog := catalogByID()
	content := []ContentScore{
		{Item: catalog[1], MatchScore: 80, Reasons: []string{"r1"}},
		{Item: catalog[2], MatchScore: 60, Reasons: []string{"r2a", "r2b"}},
	}
	collab := []CollaborativeScore{
		{Item: catalog[2], Score: 0.5, NeighborCount: 2, Reason: "collab2"},
		{Item: catalog[3], Score: 0.9, NeighborCount: 3, Reason: "collab3"},
	}

	c := NewHybridCombiner(DefaultConfig().Hybrid)
	recs := c.Combine(content, collab, c.SelectWeights(0), 10)

	if len(recs) != 3 {
		t.Fatalf("Combine() returned %d, want 3", len(recs))
	}

	// item 2: 0.7*0.6 + 0.3*0.5 = 0.57
	// item 1: 0.7*0.8         = 0.56
	// item 3: 0.3*0.9         = 0.27
	wantIDs := []int{2, 1, 3}
	wantScores := []int{57, 56, 27}
	for i, rec := range recs {
		if rec.Item.ID != wantIDs[i] {
			t.Errorf("recs[%d].Item.ID = %d, want %d", i, rec.Item.ID, wantIDs[i])
		}
		if rec.MatchScore != wantScores[i] {
			t.Errorf("recs[%d].MatchScore = %d, want %d", i, rec.MatchScore, wantScores[i])
		}
		if rec.Scores.Hybrid != rec.MatchScore {
			t.Errorf("recs[%d] hybrid breakdown %d != match score %d", i, rec.Scores.Hybrid, rec.MatchScore)
		}
	}

	if recs[0].Scores.Content != 60 || recs[0].Scores.Collaborative != 50 {
		t.Errorf("item 2 breakdown = %+v, want content 60 collaborative 50", recs[0].Scores)
	}
	if !slices.Equal(recs[0].Reasons, []string{"r2a", "r2b", "collab2"}) {
		t.Errorf("item 2 reasons = %v", recs[0].Reasons)
	}
	if recs[1].Scores.Collaborative != 0 {
		t.Errorf("content-only item collaborative = %d, want 0", recs[1].Scores.Collaborative)
	}
	if recs[2].Scores.Content != 0 || !slices.Equal(recs[2].Reasons, []string{"collab3"}) {
		t.Errorf("collaborative-only item = %+v", recs[2])
	}
}

func TestHybridCombiner_Combine_ReasonCap(t *testing.T) {
	t.Parallel()

	catalog := catalogByID()
	content := []ContentScore{{Item: catalog[1], MatchScore: 70, Reasons: []string{"a", "b", "c"}}}
	collab := []CollaborativeScore{{Item: catalog[1], Score: 0.2, Reason: "collab"}}

	c := NewHybridCombiner(DefaultConfig().Hybrid)
	recs := c.Combine(content, collab, c.SelectWeights(20), 5)

	if !slices.Equal(recs[0].Reasons, []string{"a", "b", "c"}) {
		t.Errorf("Reasons = %v, want capped at 3", recs[0].Reasons)
	}
	if len(content[0].Reasons) != 3 {
		t.Error("Combine must not modify input reasons")
	}
}

func TestHybridCombiner_Combine_ContentOnly(t *testing.T) {
	t.Parallel()

	catalog := catalogByID()
	content := []ContentScore{
		{Item: catalog[4], MatchScore: 72, Reasons: []string{"x"}},
		{Item: catalog[3], MatchScore: 72, Reasons: []string{"y"}},
		{Item: catalog[5], MatchScore: 40, Reasons: []string{"z"}},
	}

	c := NewHybridCombiner(DefaultConfig().Hybrid)
	recs := c.Combine(content, nil, ContentOnlyWeights(), 2)

	if len(recs) != 2 {
		t.Fatalf("Combine() returned %d, want 2", len(recs))
	}
	// Equal hybrid scores fall back to id order.
	if recs[0].Item.ID != 3 || recs[1].Item.ID != 4 {
		t.Errorf("order = [%d %d], want [3 4]", recs[0].Item.ID, recs[1].Item.ID)
	}
	if recs[0].MatchScore != 72 {
		t.Errorf("content-only MatchScore = %d, want content score 72", recs[0].MatchScore)
	}
}

func TestHybridCombiner_Combine_Empty(t *testing.T) {
	t.Parallel()

	c := NewHybridCombiner(DefaultConfig().Hybrid)
	recs := c.Combine(nil, nil, c.SelectWeights(0), 6)
	if recs == nil || len(recs) != 0 {
		t.Errorf("Combine(empty) = %v, want empty non-nil slice", recs)
	}
}

func TestContentOnlyWeights(t *testing.T) {
	t.Parallel()

	w := ContentOnlyWeights()
	if w.Content != 1 || w.Collaborative != 0 || w.Tier != TierContentOnly {
		t.Errorf("ContentOnlyWeights() = %+v", w)
	}
}
