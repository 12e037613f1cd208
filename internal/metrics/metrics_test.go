// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSampleCount extracts the sample count from a Prometheus histogram.
func histogramSampleCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := h.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", h)
	}
	var m io_prometheus_client.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		err       error
		wantError string
	}{
		{name: "successful select", table: "hobbies", err: nil},
		{name: "timeout", table: "user_hobbies", err: fmt.Errorf("query: %w", context.DeadlineExceeded), wantError: "timeout"},
		{name: "canceled", table: "activity_logs", err: context.Canceled, wantError: "canceled"},
		{name: "generic failure", table: "surveys", err: errors.New("connection reset"), wantError: "query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := histogramSampleCount(t, DBQueryDuration.WithLabelValues("SELECT", tt.table))

			RecordDBQuery("SELECT", tt.table, 3*time.Millisecond, tt.err)

			after := histogramSampleCount(t, DBQueryDuration.WithLabelValues("SELECT", tt.table))
			if after != before+1 {
				t.Errorf("sample count = %d, want %d", after, before+1)
			}

			if tt.wantError != "" {
				got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", tt.table, tt.wantError))
				if got < 1 {
					t.Errorf("error counter for %q = %v, want >= 1", tt.wantError, got)
				}
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
	}{
		{name: "hybrid ok", method: "GET", endpoint: "/api/v1/recommendations/users/{userID}", statusCode: "200"},
		{name: "bad user id", method: "GET", endpoint: "/api/v1/recommendations/users/{userID}", statusCode: "400"},
		{name: "rate limited", method: "GET", endpoint: "/api/v1/recommendations/users/{userID}/content", statusCode: "429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, 10*time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("api_requests_total = %v, want %v", got, before+1)
			}
		})
	}
}

func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests during request = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests after request = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	outcomes := []string{OutcomeOK, OutcomeMissingSurvey, OutcomeDegraded, OutcomeError}

	for _, outcome := range outcomes {
		t.Run(outcome, func(t *testing.T) {
			counter := RecommendRequestsTotal.WithLabelValues("hybrid", outcome)
			before := testutil.ToFloat64(counter)

			RecordRecommendation("hybrid", outcome, 20*time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("recommend_requests_total{outcome=%q} = %v, want %v", outcome, got, before+1)
			}
		})
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "test-breaker"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}

	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()

	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open")); got != 1 {
		t.Errorf("transitions = %v, want 1", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	const workers = 20

	counter := RecommendRequestsTotal.WithLabelValues("concurrent", OutcomeOK)
	before := testutil.ToFloat64(counter)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordRecommendation("concurrent", OutcomeOK, time.Millisecond)
			RecommendNeighborsFound.Observe(3)
			RecommendCandidateFailures.Inc()
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(counter); got != before+workers {
		t.Errorf("concurrent counter = %v, want %v", got, before+workers)
	}
}

func TestMetricGathering(t *testing.T) {
	RecordDBQuery("SELECT", "hobbies", time.Millisecond, nil)
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func TestRecordCatalogCacheLookup(t *testing.T) {
	hits := CatalogCacheLookups.WithLabelValues("hit")
	misses := CatalogCacheLookups.WithLabelValues("miss")
	hitsBefore := testutil.ToFloat64(hits)
	missesBefore := testutil.ToFloat64(misses)

	RecordCatalogCacheLookup(false)
	RecordCatalogCacheLookup(true)
	RecordCatalogCacheLookup(true)

	if got := testutil.ToFloat64(hits) - hitsBefore; got != 2 {
		t.Errorf("hits delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(misses) - missesBefore; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
}
