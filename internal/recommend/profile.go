// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

// surveyMidpoint is substituted for unanswered questions.
const surveyMidpoint = 3

// Question ids of the onboarding survey, grouped by preference axis.
var (
	outdoorQuestions  = []string{"1", "2"}
	socialQuestions   = []string{"3", "4"}
	creativeQuestions = []string{"5", "6"}
	physicalQuestions = []string{"7"}
	budgetQuestions   = []string{"8"}
)

// BuildPreferenceProfile normalizes survey answers into a PreferenceProfile.
//
// Each axis averages its questions on the 1-5 scale and maps the average to
// [0, 1] with (avg - 1) / 4. Missing answers count as the midpoint, so a nil
// survey yields the neutral profile. The function is pure and total.
func BuildPreferenceProfile(survey *SurveyResponse) PreferenceProfile {
	var answers map[string]int
	if survey != nil {
		answers = survey.Answers
	}

	p := PreferenceProfile{
		Outdoor:  axisScore(answers, outdoorQuestions),
		Social:   axisScore(answers, socialQuestions),
		Creative: axisScore(answers, creativeQuestions),
		Physical: axisScore(answers, physicalQuestions),
		Budget:   axisScore(answers, budgetQuestions),
	}
	p.DifficultyPreference = difficultyPreference(p.Physical, p.Creative)
	return p
}

// NeutralPreferenceProfile returns the profile used for users without a survey.
func NeutralPreferenceProfile() PreferenceProfile {
	return BuildPreferenceProfile(nil)
}

func axisScore(answers map[string]int, questions []string) float64 {
	sum := 0
	for _, q := range questions {
		v, ok := answers[q]
		if !ok {
			v = surveyMidpoint
		}
		sum += v
	}
	avg := float64(sum) / float64(len(questions))
	return clamp01((avg - 1) / 4)
}

// difficultyPreference maps physical and creative levels to a 1-4 preference.
func difficultyPreference(physical, creative float64) int {
	switch {
	case physical > 0.6 && creative > 0.6:
		return 4
	case physical > 0.6 || creative > 0.6:
		return 3
	case physical > 0.4 || creative > 0.4:
		return 2
	default:
		return 1
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
