// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"math"
	"sort"
)

// Category groups that receive an axis-specific sub-score.
var (
	creativeCategories = map[string]bool{"미술": true, "예술": true, "문화": true}
	physicalCategories = map[string]bool{"스포츠": true, "건강": true}
)

// Reason strings produced by the content scorer.
const (
	ReasonOutdoor     = "Suited to people who enjoy the outdoors"
	ReasonIndoor      = "A comfortable indoor activity"
	ReasonSocial      = "A great way to meet new people"
	ReasonIndividual  = "Can be enjoyed at your own pace"
	ReasonCreative    = "Lets you express your creativity"
	ReasonPhysical    = "Keeps you active and healthy"
	ReasonBudget      = "Fits your budget"
	ReasonDifficulty  = "Matches your preferred difficulty level"
	ReasonGeneric     = "A well-rounded hobby worth trying"
	maxContentReasons = 3
)

// Fit levels above which budget and difficulty produce reasons.
const (
	budgetReasonFit     = 0.9
	difficultyReasonFit = 0.75
)

// ContentScorer scores catalog items against a preference profile using a
// fixed weighted-attribute model:
//
//	score = round(100 * (wL*location + wS*sociality + wC*creativity +
//	                     wP*physicality + wB*budget + wD*difficulty))
//
// Every sub-score is in [0, 1] and the weights sum to 1.0, so the score is
// in [0, 100]. The scorer is stateless and safe for concurrent use.
type ContentScorer struct {
	weights   ContentWeights
	threshold float64
}

// contentSubScores holds the six sub-scores of one item.
type contentSubScores struct {
	location    float64
	sociality   float64
	creativity  float64
	physicality float64
	budget      float64
	difficulty  float64
}

// NewContentScorer creates a content scorer.
//
//nolint:gocritic // config is copied on construction
func NewContentScorer(cfg ContentConfig) *ContentScorer {
	return &ContentScorer{
		weights:   cfg.Weights,
		threshold: cfg.ReasonThreshold,
	}
}

// Score scores a single item.
//
//nolint:gocritic // small value types passed by value for purity
func (s *ContentScorer) Score(profile PreferenceProfile, item CatalogItem) ContentScore {
	sub := s.subScores(profile, item)

	total := s.weights.Location*sub.location +
		s.weights.Sociality*sub.sociality +
		s.weights.Creativity*sub.creativity +
		s.weights.Physicality*sub.physicality +
		s.weights.Budget*sub.budget +
		s.weights.Difficulty*sub.difficulty

	return ContentScore{
		Item:       item,
		MatchScore: toPercent(total),
		Reasons:    s.reasons(profile, item, sub),
	}
}

// ScoreAll scores every item and returns the topN by match score.
// Ties are ordered by item id. topN <= 0 returns the full ranking.
//
//nolint:gocritic // small value types passed by value for purity
func (s *ContentScorer) ScoreAll(profile PreferenceProfile, items []CatalogItem, topN int) []ContentScore {
	scored := make([]ContentScore, 0, len(items))
	for _, item := range items {
		scored = append(scored, s.Score(profile, item))
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].Item.ID < scored[j].Item.ID
	})

	if topN > 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

//nolint:gocritic // small value types passed by value for purity
func (s *ContentScorer) subScores(p PreferenceProfile, item CatalogItem) contentSubScores {
	sub := contentSubScores{
		location:  attributeFit(item.IndoorOutdoor, LocationOutdoor, LocationIndoor, p.Outdoor),
		sociality: attributeFit(item.SocialIndividual, SocialitySocial, SocialityIndividual, p.Social),
		budget:    1 - math.Abs(budgetScore(item.Budget)-p.Budget),
		difficulty: 1 - math.Abs(
			normalizeOrdinal(float64(item.Difficulty))-normalizeOrdinal(float64(p.DifficultyPreference))),
	}

	if creativeCategories[item.Category] {
		sub.creativity = p.Creative
	} else {
		sub.creativity = 0.3 + 0.7*(1-p.Creative)
	}

	if physicalCategories[item.Category] {
		sub.physicality = p.Physical
	} else {
		sub.physicality = 0.3 + 0.7*(1-p.Physical)
	}

	return sub
}

//nolint:gocritic // small value types passed by value for purity
func (s *ContentScorer) reasons(p PreferenceProfile, item CatalogItem, sub contentSubScores) []string {
	reasons := make([]string, 0, maxContentReasons)
	add := func(ok bool, reason string) {
		if ok && len(reasons) < maxContentReasons {
			reasons = append(reasons, reason)
		}
	}

	add(item.IndoorOutdoor == LocationOutdoor && p.Outdoor > s.threshold, ReasonOutdoor)
	add(item.IndoorOutdoor == LocationIndoor && 1-p.Outdoor > s.threshold, ReasonIndoor)
	add(item.SocialIndividual == SocialitySocial && p.Social > s.threshold, ReasonSocial)
	add(item.SocialIndividual == SocialityIndividual && 1-p.Social > s.threshold, ReasonIndividual)
	add(creativeCategories[item.Category] && p.Creative > s.threshold, ReasonCreative)
	add(physicalCategories[item.Category] && p.Physical > s.threshold, ReasonPhysical)
	add(sub.budget >= budgetReasonFit, ReasonBudget)
	add(sub.difficulty >= difficultyReasonFit, ReasonDifficulty)

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneric)
	}
	return reasons
}

// attributeFit scores a three-valued attribute against a preference:
// "both" is neutral, the positive value takes the preference and the
// negative value takes its complement.
func attributeFit(value, positive, negative string, pref float64) float64 {
	switch value {
	case positive:
		return pref
	case negative:
		return 1 - pref
	default:
		return 0.5
	}
}

func budgetScore(budget string) float64 {
	switch budget {
	case BudgetLow:
		return 0
	case BudgetHigh:
		return 1
	default:
		return 0.5
	}
}

// normalizeOrdinal maps a 1-5 value to [0, 1].
func normalizeOrdinal(v float64) float64 {
	return clamp01((v - 1) / 4)
}

// toPercent converts a [0, 1] score to a rounded integer in [0, 100].
func toPercent(v float64) int {
	pct := int(math.Round(v * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
