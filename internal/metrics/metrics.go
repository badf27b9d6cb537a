package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EntriesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_entries_created_total",
			Help: "Daily entries recorded since process start",
		},
	)

	TallyMismatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_tally_mismatches_total",
			Help: "Daily reports computed whose books did not tally",
		},
	)

	ReportCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_cache_requests_total",
			Help: "Report cache lookups by outcome (hit or miss)",
		},
		[]string{"outcome"},
	)
)
