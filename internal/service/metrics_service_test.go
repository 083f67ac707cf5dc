package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/lessons/nearest", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/lessons/nearest", http.StatusNotFound, 40*time.Millisecond)
	m.ObserveNearestSearch(2, true)
	m.ObserveNearestSearch(7, false)
	m.AddImportedRows("lessons", "created", 12)
	m.AddImportedRows("lessons", "failed", 0)

	snapshot := m.Snapshot()
	assert.Equal(t, uint64(2), snapshot.RequestsTotal)
	assert.InDelta(t, 30, snapshot.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(2), snapshot.NearestSearches)
	assert.InDelta(t, 4.5, snapshot.AverageCandidateDays, 0.001)
	assert.Equal(t, uint64(12), snapshot.ImportedRows)
	assert.Positive(t, snapshot.Goroutines)
}

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHotfixOverlay("cancelled_day")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `timetable_hotfix_overlays_total{outcome="cancelled_day"} 1`))
	assert.True(t, strings.Contains(body, "goroutines_total"))
}

func TestMetricsServiceNilReceiver(t *testing.T) {
	var m *MetricsService
	m.ObserveNearestSearch(3, true)
	m.AddImportedRows("lessons", "created", 1)
	assert.Zero(t, m.Snapshot().RequestsTotal)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
