// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
Package api provides the HTTP surface of the recommendation service.

# Routes

	GET /api/v1/recommendations/users/{userID}?limit=N                hybrid list
	GET /api/v1/recommendations/users/{userID}/content?limit=N        content-only list
	GET /api/v1/recommendations/users/{userID}/collaborative?limit=N  collaborative-only list
	GET /api/v1/recommendations/users/{userID}/neighbors              similar users
	GET /api/v1/health/live                                           liveness probe
	GET /api/v1/health/ready                                          readiness probe (pings DuckDB)
	GET /metrics                                                      Prometheus metrics

Every JSON body uses the models.APIResponse envelope. A user without a
survey receives 200 with an empty list and a guidance message in
data.message. Invalid ids or limits are 400 VALIDATION_ERROR, a failed
non-degradable read is 500 RECOMMENDATION_ERROR.

# Middleware

The chi stack is request id with logging context, real IP, panic recovery,
go-chi/cors and gzip compression. Recommendation routes add go-chi/httprate
limiting, security headers and the Prometheus middleware. Health routes use
a permissive 1000/min limit.
*/
package api
