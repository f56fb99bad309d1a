package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Lookup metrics
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burrow_lookups_total",
			Help: "Total number of lookups by backend, record type, and outcome",
		},
		[]string{"backend", "type", "outcome"},
	)

	LookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "burrow_lookup_duration_seconds",
			Help:    "Lookup duration by backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	// Walk metrics
	WalkAttempts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "burrow_walk_attempts",
			Help:    "Number of suffixes tried per domain-tree walk",
			Buckets: []float64{1, 2, 3, 4, 5, 8, 12},
		},
	)

	// Probe metrics
	BackendAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "burrow_backend_available",
			Help: "Whether a resolver tool was found on PATH (1 = installed)",
		},
		[]string{"backend"},
	)
)

// Outcome labels for LookupsTotal
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
	OutcomeUsage       = "usage_error"
	OutcomeParse       = "parse_error"
)

// Init registers all metrics with the default registry
func Init() {
	prometheus.MustRegister(
		LookupsTotal,
		LookupDuration,
		WalkAttempts,
		BackendAvailable,
	)
}

// Handler returns the HTTP handler for the /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLookup records one finished lookup
func ObserveLookup(backend, rtype, outcome string, duration time.Duration) {
	LookupsTotal.WithLabelValues(backend, rtype, outcome).Inc()
	LookupDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

// SetBackendAvailable records a probe result
func SetBackendAvailable(backend string, available bool) {
	v := 0.0
	if available {
		v = 1.0
	}
	BackendAvailable.WithLabelValues(backend).Set(v)
}
