// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

/*
Package metrics provides Prometheus metrics for the recommendation service.

All collectors are registered with the default registry via promauto and are
exposed at /metrics:

	curl http://localhost:8480/metrics

# Available Metrics

Database:
  - duckdb_query_duration_seconds{operation, table}
  - duckdb_query_errors_total{operation, table, error_type}

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Recommendation:
  - recommend_requests_total{kind, outcome}: outcome is ok, missing_survey, degraded or error
  - recommend_duration_seconds{kind}
  - recommend_neighbors_found
  - recommend_candidate_failures_total

Circuit breaker (collaborative stage):
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Alerting

A sustained rise in recommend_requests_total{outcome="degraded"} means users
are receiving content-only lists; check circuit_breaker_state and the DuckDB
error counters.
*/
package metrics
