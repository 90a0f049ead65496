package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_http_requests_total",
			Help: "HTTP requests handled, by method, route pattern and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transit_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ImportRoutesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_import_routes_total",
			Help: "Routes written by the bustimes importer, by operator and result.",
		},
		[]string{"operator", "result"},
	)

	ImportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_import_runs_total",
			Help: "Importer runs by outcome.",
		},
		[]string{"outcome"},
	)
)

// Import outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeEmpty    = "empty"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// RecordImport counts one importer run and the rows it wrote.
func RecordImport(operatorSlug, outcome string, created, updated int) {
	ImportRunsTotal.WithLabelValues(outcome).Inc()
	if created > 0 {
		ImportRoutesTotal.WithLabelValues(operatorSlug, "created").Add(float64(created))
	}
	if updated > 0 {
		ImportRoutesTotal.WithLabelValues(operatorSlug, "updated").Add(float64(updated))
	}
}
