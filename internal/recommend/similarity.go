// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"math"
	"sort"
)

// Normalization constants for the behavioral scalars of a feature vector.
const (
	totalActivitiesScale  = 100.0
	viewHobbyCountScale   = 50.0
	addInterestCountScale = 20.0
	completedHobbiesScale = 10.0
)

// CosineSimilarity compares two users' feature vectors.
//
// Both vectors are laid out as the five preference axes, the four scaled
// behavioral scalars and one dimension per category in the union of both
// category maps (zero where absent). Categories are visited in sorted order
// so the result does not depend on map iteration. The result is 0 when
// either vector has zero magnitude.
func CosineSimilarity(a, b *UserFeatureVector) float64 {
	va, vb := alignVectors(a, b)
	return cosine(va, vb)
}

func alignVectors(a, b *UserFeatureVector) ([]float64, []float64) {
	categories := unionKeys(a.CategoryShare, b.CategoryShare)

	va := make([]float64, 0, 9+len(categories))
	vb := make([]float64, 0, 9+len(categories))
	va = appendDense(va, a)
	vb = appendDense(vb, b)

	for _, c := range categories {
		va = append(va, a.CategoryShare[c])
		vb = append(vb, b.CategoryShare[c])
	}
	return va, vb
}

func appendDense(dst []float64, v *UserFeatureVector) []float64 {
	return append(dst,
		v.Profile.Outdoor,
		v.Profile.Social,
		v.Profile.Creative,
		v.Profile.Physical,
		v.Profile.Budget,
		float64(v.TotalActivities)/totalActivitiesScale,
		float64(v.ViewHobbyCount)/viewHobbyCountScale,
		float64(v.AddInterestCount)/addInterestCountScale,
		float64(v.CompletedHobbies)/completedHobbiesScale,
	)
}

func unionKeys(a, b map[string]float64) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// cosine computes cosine similarity between two equal-length vectors.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
