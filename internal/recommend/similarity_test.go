// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"math"
	"slices"
	"testing"
)

func TestCosineSimilarity_IdenticalUsers(t *testing.T) {
	t.Parallel()

	history := func(userID int) []InteractionRecord {
		return []InteractionRecord{
			interaction(userID, 1, StatusCompleted),
			interaction(userID, 2, StatusLearning),
			interaction(userID, 5, StatusInterested),
		}
	}

	a := BuildFeatureVector(1, uniformSurvey(1, 4), history(1), viewEvents(1, 20))
	b := BuildFeatureVector(2, uniformSurvey(2, 4), history(2), viewEvents(2, 20))

	if got := CosineSimilarity(a, b); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	t.Parallel()

	a := BuildFeatureVector(1, uniformSurvey(1, 2), []InteractionRecord{interaction(1, 1, StatusCompleted)}, viewEvents(1, 5))
	b := BuildFeatureVector(2, uniformSurvey(2, 5), []InteractionRecord{interaction(2, 2, StatusInterested)}, viewEvents(2, 40))

	ab := CosineSimilarity(a, b)
	ba := CosineSimilarity(b, a)
	if ab != ba {
		t.Errorf("CosineSimilarity not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 || ab >= 1 {
		t.Errorf("CosineSimilarity = %v, want in (0, 1)", ab)
	}
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	t.Parallel()

	// All-minimum survey with no behavior has zero magnitude.
	zero := BuildFeatureVector(1, uniformSurvey(1, 1), nil, nil)
	other := BuildFeatureVector(2, uniformSurvey(2, 4), nil, viewEvents(2, 3))

	if got := CosineSimilarity(zero, other); got != 0 {
		t.Errorf("CosineSimilarity(zero, other) = %v, want 0", got)
	}
	if got := CosineSimilarity(zero, zero); got != 0 {
		t.Errorf("CosineSimilarity(zero, zero) = %v, want 0", got)
	}
}

func TestCosineSimilarity_DisjointCategories(t *testing.T) {
	t.Parallel()

	a := BuildFeatureVector(1, uniformSurvey(1, 1), []InteractionRecord{{ItemID: 1, Category: "스포츠"}}, nil)
	b := BuildFeatureVector(2, uniformSurvey(2, 1), []InteractionRecord{{ItemID: 2, Category: "미술"}}, nil)

	if got := CosineSimilarity(a, b); got != 0 {
		t.Errorf("CosineSimilarity(disjoint) = %v, want 0", got)
	}
}

func TestAlignVectors(t *testing.T) {
	t.Parallel()

	a := &UserFeatureVector{CategoryShare: map[string]float64{"b": 0.5, "a": 0.5}}
	b := &UserFeatureVector{CategoryShare: map[string]float64{"c": 1}}

	va, vb := alignVectors(a, b)
	if len(va) != 12 || len(vb) != 12 {
		t.Fatalf("aligned lengths = %d/%d, want 12/12", len(va), len(vb))
	}
	if !slices.Equal(va[9:], []float64{0.5, 0.5, 0}) {
		t.Errorf("a categories = %v, want [0.5 0.5 0]", va[9:])
	}
	if !slices.Equal(vb[9:], []float64{0, 0, 1}) {
		t.Errorf("b categories = %v, want [0 0 1]", vb[9:])
	}
}

func TestAppendDense_Scaling(t *testing.T) {
	t.Parallel()

	v := &UserFeatureVector{
		TotalActivities:  100,
		ViewHobbyCount:   25,
		AddInterestCount: 5,
		CompletedHobbies: 20,
	}

	got := appendDense(nil, v)
	want := []float64{0, 0, 0, 0, 0, 1, 0.5, 0.25, 2}
	if !slices.Equal(got, want) {
		t.Errorf("appendDense() = %v, want %v", got, want)
	}
}

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"parallel", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"length mismatch", []float64{1}, []float64{1, 2}, 0},
		{"empty", nil, nil, 0},
		{"zero norm", []float64{0, 0}, []float64{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cosine(tt.a, tt.b); !approxEqual(got, tt.want) {
				t.Errorf("cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}
