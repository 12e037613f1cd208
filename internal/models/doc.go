// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
Package models defines the HTTP envelope shared by all Hobbyrec endpoints.

Recommendation payloads themselves are the recommend package types; this
package only wraps them:

  - APIResponse: Standard response wrapper ({status, data, metadata, error})
  - Metadata: Timestamp, query time and request id
  - APIError: Machine-readable code, message and optional details
  - HealthStatus: Liveness and readiness bodies

Example:

	response := models.APIResponse{
	    Status: models.StatusSuccess,
	    Data:   recommendations,
	    Metadata: models.Metadata{
	        Timestamp:   time.Now(),
	        QueryTimeMS: 23,
	    },
	}
*/
package models
