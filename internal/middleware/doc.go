// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
Package middleware provides HTTP instrumentation middleware.

PrometheusMetrics records api_requests_total, api_request_duration_seconds
and api_active_requests for every request. The endpoint label is the chi
route pattern rather than the raw path, so per-user URLs do not create
new series.

The middleware has the http.HandlerFunc shape and is mounted on chi with an
adapter:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

CORS, rate limiting and request ids come from the chi ecosystem and are
configured in the api package.
*/
package middleware
