package models

import "time"

// SystemMetrics is a point-in-time summary of the instrumentation counters.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	NearestSearches          uint64    `json:"nearest_searches"`
	AverageCandidateDays     float64   `json:"average_candidate_days"`
	ImportedRows             uint64    `json:"imported_rows"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
