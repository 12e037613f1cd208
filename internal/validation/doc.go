// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package validation provides request validation using go-playground/validator v10.
//
// A thread-safe singleton validator is created once with
// WithRequiredStructEnabled. Field names in errors are taken from json tags,
// so messages name the query parameter the client sent.
//
// # Recommendation Requests
//
//	req := validation.RecommendationRequest{UserID: userID, Limit: limit}
//	if verr := validation.ValidateRecommendationRequest(&req, maxTopN); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// The upper bound of limit comes from configuration. It travels in the
// json-ignored MaxLimit field and is enforced by a struct-level
// validation registered on the shared validator.
package validation
