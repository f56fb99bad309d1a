/*
Package metrics exposes Prometheus metrics for burrow lookups.

# Metrics

	burrow_lookups_total{backend,type,outcome}
	    Counter of lookups. Outcome is one of ok, empty, unavailable,
	    usage_error, parse_error, mirroring the three-way result
	    contract plus the usage/parse error split.

	burrow_lookup_duration_seconds{backend}
	    Histogram of end-to-end lookup latency per backend.

	burrow_walk_attempts
	    Histogram of suffixes tried per domain-tree walk.

	burrow_backend_available{backend}
	    Gauge set from the availability probe (1 = tool on PATH).

# Usage

	metrics.Init()
	http.Handle("/metrics", metrics.Handler())

The dispatcher calls ObserveLookup on every lookup; `burrow serve`
exposes the handler.
*/
package metrics
