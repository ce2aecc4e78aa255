package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_lookups_total",
			Help: "Redis list cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss" or "error"
	)

	DataServiceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_data_service_errors_total",
			Help: "Data service failures by operation",
		},
		[]string{"operation"},
	)

	AutoPilotToggles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_autopilot_toggles_total",
			Help: "Auto-pilot flag toggles",
		},
	)
)
