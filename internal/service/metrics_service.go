package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/timetable-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	candidateDays   *prometheus.HistogramVec
	importedRows    *prometheus.CounterVec
	hotfixesApplied *prometheus.CounterVec

	requestCount         uint64
	requestDurationTotal uint64
	searchCount          uint64
	candidateDaysTotal   uint64
	importedRowCount     uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	candidateDays := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_nearest_candidate_days",
		Help:    "Candidate days examined by a nearest-day search",
		Buckets: []float64{1, 2, 3, 4, 5, 6, 7},
	}, []string{"outcome"})

	importedRows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_import_rows_total",
		Help: "Timetable rows processed by the importer",
	}, []string{"mode", "result"})

	hotfixesApplied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_hotfix_overlays_total",
		Help: "Hotfix overlay passes by outcome",
	}, []string{"outcome"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, candidateDays, importedRows, hotfixesApplied, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		candidateDays:   candidateDays,
		importedRows:    importedRows,
		hotfixesApplied: hotfixesApplied,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveNearestSearch records how many candidate days a nearest-day search examined.
func (m *MetricsService) ObserveNearestSearch(days int, found bool) {
	if m == nil {
		return
	}
	outcome := "found"
	if !found {
		outcome = "exhausted"
	}
	m.candidateDays.WithLabelValues(outcome).Observe(float64(days))
	atomic.AddUint64(&m.searchCount, 1)
	atomic.AddUint64(&m.candidateDaysTotal, uint64(days))
}

// ObserveHotfixOverlay counts overlay passes: "cancelled_day", "patched" or "untouched".
func (m *MetricsService) ObserveHotfixOverlay(outcome string) {
	if m == nil {
		return
	}
	m.hotfixesApplied.WithLabelValues(outcome).Inc()
}

// AddImportedRows counts importer rows per mode ("lessons", "hotfixes") and result ("created", "existing", "failed").
func (m *MetricsService) AddImportedRows(mode, result string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.importedRows.WithLabelValues(mode, result).Add(float64(n))
	atomic.AddUint64(&m.importedRowCount, uint64(n))
}

// Snapshot returns aggregated metrics suitable for the summary endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	searches := atomic.LoadUint64(&m.searchCount)
	days := atomic.LoadUint64(&m.candidateDaysTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}
	var avgDays float64
	if searches > 0 {
		avgDays = float64(days) / float64(searches)
	}

	return models.SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		NearestSearches:          searches,
		AverageCandidateDays:     avgDays,
		ImportedRows:             atomic.LoadUint64(&m.importedRowCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
