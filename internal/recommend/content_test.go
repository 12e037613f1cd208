// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"slices"
	"testing"
)

func newTestContentScorer() *ContentScorer {
	return NewContentScorer(DefaultConfig().Content)
}

func TestContentScorer_Score_Neutral(t *testing.T) {
	t.Parallel()

	s := newTestContentScorer()
	item := CatalogItem{
		ID:               1,
		Category:         "공예",
		IndoorOutdoor:    LocationOutdoor,
		SocialIndividual: SocialitySocial,
		Budget:           BudgetMedium,
		Difficulty:       2,
	}

	// 0.25*0.5 + 0.25*0.5 + 0.2*0.65 + 0.2*0.65 + 0.05*1 + 0.05*1 = 0.61
	got := s.Score(NeutralPreferenceProfile(), item)
	if got.MatchScore != 61 {
		t.Errorf("MatchScore = %d, want 61", got.MatchScore)
	}
	if got.Item.ID != 1 {
		t.Errorf("Item.ID = %d, want 1", got.Item.ID)
	}
}

func TestContentScorer_Score_Range(t *testing.T) {
	t.Parallel()

	s := newTestContentScorer()
	profiles := []PreferenceProfile{
		BuildPreferenceProfile(uniformSurvey(1, 1)),
		BuildPreferenceProfile(uniformSurvey(1, 3)),
		BuildPreferenceProfile(uniformSurvey(1, 5)),
	}

	for _, p := range profiles {
		for _, item := range testCatalog() {
			got := s.Score(p, item)
			if got.MatchScore < 0 || got.MatchScore > 100 {
				t.Errorf("MatchScore for item %d = %d, want [0, 100]", item.ID, got.MatchScore)
			}
			if len(got.Reasons) == 0 || len(got.Reasons) > 3 {
				t.Errorf("item %d has %d reasons, want 1-3", item.ID, len(got.Reasons))
			}
		}
	}
}

func TestContentScorer_OutdoorPreference(t *testing.T) {
	t.Parallel()

	profile := BuildPreferenceProfile(&SurveyResponse{UserID: 1, Answers: map[string]int{
		"1": 5, "2": 5, "3": 3, "4": 3, "5": 3, "6": 3, "7": 1, "8": 3,
	}})

	outdoor := CatalogItem{ID: 10, Category: "자연", IndoorOutdoor: LocationOutdoor, SocialIndividual: SocialityBoth, Budget: BudgetMedium, Difficulty: 2}
	indoor := outdoor
	indoor.ID = 11
	indoor.IndoorOutdoor = LocationIndoor

	s := newTestContentScorer()
	outScore := s.Score(profile, outdoor)
	inScore := s.Score(profile, indoor)

	if outScore.MatchScore <= inScore.MatchScore {
		t.Errorf("outdoor item scored %d, indoor %d; want outdoor strictly higher",
			outScore.MatchScore, inScore.MatchScore)
	}

	outSub := s.subScores(profile, outdoor)
	inSub := s.subScores(profile, indoor)
	if outSub.location != 1 || inSub.location != 0 {
		t.Errorf("location sub-scores = %v/%v, want 1/0", outSub.location, inSub.location)
	}

	wantReasons := []string{ReasonOutdoor, ReasonBudget, ReasonDifficulty}
	if !slices.Equal(outScore.Reasons, wantReasons) {
		t.Errorf("Reasons = %v, want %v", outScore.Reasons, wantReasons)
	}
}

func TestContentScorer_CategoryAxes(t *testing.T) {
	t.Parallel()

	s := newTestContentScorer()
	creative := BuildPreferenceProfile(&SurveyResponse{UserID: 1, Answers: map[string]int{"5": 5, "6": 5}})
	physical := BuildPreferenceProfile(&SurveyResponse{UserID: 1, Answers: map[string]int{"7": 5}})

	tests := []struct {
		name        string
		profile     PreferenceProfile
		category    string
		wantCreate  float64
		wantPhys    float64
		wantsReason string
	}{
		{"creative user and art item", creative, "미술", 1.0, 0.65, ReasonCreative},
		{"creative user and sport item", creative, "스포츠", 0.3, 0.5, ""},
		{"physical user and health item", physical, "건강", 0.65, 1.0, ReasonPhysical},
		{"physical user and culture item", physical, "문화", 0.5, 0.3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := CatalogItem{ID: 1, Category: tt.category, IndoorOutdoor: LocationBoth, SocialIndividual: SocialityBoth, Budget: BudgetHigh, Difficulty: 5}
			sub := s.subScores(tt.profile, item)
			if !approxEqual(sub.creativity, tt.wantCreate) {
				t.Errorf("creativity = %v, want %v", sub.creativity, tt.wantCreate)
			}
			if !approxEqual(sub.physicality, tt.wantPhys) {
				t.Errorf("physicality = %v, want %v", sub.physicality, tt.wantPhys)
			}

			reasons := s.Score(tt.profile, item).Reasons
			if tt.wantsReason != "" && !slices.Contains(reasons, tt.wantsReason) {
				t.Errorf("Reasons = %v, want to contain %q", reasons, tt.wantsReason)
			}
		})
	}
}

func TestContentScorer_GenericReason(t *testing.T) {
	t.Parallel()

	s := newTestContentScorer()
	// Neutral user, neutral attributes, budget and difficulty far from preference.
	item := CatalogItem{ID: 1, Category: "기타", IndoorOutdoor: LocationBoth, SocialIndividual: SocialityBoth, Budget: BudgetHigh, Difficulty: 5}

	got := s.Score(NeutralPreferenceProfile(), item)
	if !slices.Equal(got.Reasons, []string{ReasonGeneric}) {
		t.Errorf("Reasons = %v, want only the generic reason", got.Reasons)
	}
}

func TestContentScorer_ScoreAll(t *testing.T) {
	t.Parallel()

	s := newTestContentScorer()
	profile := BuildPreferenceProfile(uniformSurvey(1, 4))
	items := testCatalog()

	all := s.ScoreAll(profile, items, 0)
	if len(all) != len(items) {
		t.Fatalf("ScoreAll(topN=0) returned %d items, want %d", len(all), len(items))
	}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.MatchScore < cur.MatchScore {
			t.Errorf("ranking not descending at %d: %d < %d", i, prev.MatchScore, cur.MatchScore)
		}
		if prev.MatchScore == cur.MatchScore && prev.Item.ID > cur.Item.ID {
			t.Errorf("tie at %d not ordered by id: %d > %d", i, prev.Item.ID, cur.Item.ID)
		}
	}

	top := s.ScoreAll(profile, items, 3)
	if len(top) != 3 {
		t.Fatalf("ScoreAll(topN=3) returned %d items, want 3", len(top))
	}
	for i := range top {
		if top[i].Item.ID != all[i].Item.ID {
			t.Errorf("top[%d] = item %d, want %d", i, top[i].Item.ID, all[i].Item.ID)
		}
	}

	if got := s.ScoreAll(profile, nil, 5); len(got) != 0 {
		t.Errorf("ScoreAll(empty catalog) returned %d items", len(got))
	}
}

func TestContentScorer_TiesOrderedByID(t *testing.T) {
	t.Parallel()

	s := newTestContentScorer()
	base := CatalogItem{Category: "공예", IndoorOutdoor: LocationIndoor, SocialIndividual: SocialitySocial, Budget: BudgetLow, Difficulty: 2}
	items := make([]CatalogItem, 0, 3)
	for _, id := range []int{30, 10, 20} {
		item := base
		item.ID = id
		items = append(items, item)
	}

	got := s.ScoreAll(NeutralPreferenceProfile(), items, 0)
	ids := []int{got[0].Item.ID, got[1].Item.ID, got[2].Item.ID}
	if !slices.Equal(ids, []int{10, 20, 30}) {
		t.Errorf("tie order = %v, want [10 20 30]", ids)
	}
}

func TestToPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.614, 61},
		{0.616, 62},
		{1, 100},
		{1.2, 100},
		{-0.3, 0},
	}

	for _, tt := range tests {
		if got := toPercent(tt.in); got != tt.want {
			t.Errorf("toPercent(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
