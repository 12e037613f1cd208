// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import "errors"

var (
	// ErrNoDataProvider is returned when the engine is used before SetDataProvider.
	ErrNoDataProvider = errors.New("data provider not set")

	// ErrInvalidUserID is returned for non-positive user ids.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidTopN is returned when the requested list size is out of range.
	ErrInvalidTopN = errors.New("invalid top n")
)

// MissingSurveyMessage is returned to callers whose user has not completed the survey.
const MissingSurveyMessage = "Please complete the hobby survey to receive personalized recommendations."
