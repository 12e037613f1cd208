// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/hobbyrec/internal/cache"
	"github.com/tomtom215/hobbyrec/internal/database"
	"github.com/tomtom215/hobbyrec/internal/models"
)

type mockStore struct {
	pingErr error
	counts  *database.TableCounts
}

func (m *mockStore) Ping(context.Context) error {
	return m.pingErr
}

func (m *mockStore) GetTableCounts(context.Context) (*database.TableCounts, error) {
	if m.counts == nil {
		return nil, errors.New("no counts")
	}
	return m.counts, nil
}

type mockCatalogCache struct {
	enabled bool
}

func (m *mockCatalogCache) CatalogCacheStats() (cache.Stats, bool) {
	if !m.enabled {
		return cache.Stats{}, false
	}
	return cache.Stats{Keys: 1, Hits: 3, Misses: 1, HitRate: 75}, true
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) (string, models.HealthStatus) {
	t.Helper()
	var body struct {
		Status string              `json:"status"`
		Data   models.HealthStatus `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Status, body.Data
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&mockStore{pingErr: errors.New("down")}, nil, "1.2.3")
	rec := httptest.NewRecorder()
	h.HealthLive(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	status, data := decodeHealth(t, rec)
	if status != "success" || data.Status != "alive" || data.Version != "1.2.3" {
		t.Errorf("got status %q data %+v", status, data)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		store      Store
		wantCode   int
		wantStatus string
		wantCounts bool
	}{
		{
			name:       "ready",
			store:      &mockStore{counts: &database.TableCounts{Users: 4, Hobbies: 20}},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantCounts: true,
		},
		{
			name:       "ping fails",
			store:      &mockStore{pingErr: errors.New("database is locked")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
		{
			name:       "counts unavailable still ready",
			store:      &mockStore{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name:       "no store",
			store:      nil,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.store, &mockRecommender{}, "test")
			rec := httptest.NewRecorder()
			h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			status, data := decodeHealth(t, rec)
			if status != tt.wantStatus || data.Status != tt.wantStatus {
				t.Errorf("status = %q / %q, want %q", status, data.Status, tt.wantStatus)
			}
			if (data.Counts != nil) != tt.wantCounts {
				t.Errorf("counts = %v, want present=%v", data.Counts, tt.wantCounts)
			}
			if data.Engine == nil {
				t.Error("expected engine stats")
			}
		})
	}
}

func TestHealthReady_CatalogCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog *mockCatalogCache
		want    bool
	}{
		{name: "enabled", catalog: &mockCatalogCache{enabled: true}, want: true},
		{name: "disabled", catalog: &mockCatalogCache{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&mockStore{}, nil, "test").WithCatalogCache(tt.catalog)
			rec := httptest.NewRecorder()
			h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

			_, data := decodeHealth(t, rec)
			if !tt.want {
				if data.CatalogCache != nil {
					t.Errorf("catalog_cache = %v, want omitted", data.CatalogCache)
				}
				return
			}
			stats, ok := data.CatalogCache.(map[string]interface{})
			if !ok {
				t.Fatalf("catalog_cache = %T, want object", data.CatalogCache)
			}
			if stats["hits"] != float64(3) || stats["hit_rate_percent"] != float64(75) {
				t.Errorf("catalog_cache = %v", stats)
			}
		})
	}
}
