// Package metric provides Prometheus-based metrics for the synthesis core.
//
// A MetricsRegistry owns a private Prometheus registry so multiple synthesis
// instances in one process never collide, and pre-registers the core
// synthesis metrics (query counts and latency, records produced, provider
// errors and skips, catalog lookups and table sizes). Callers can register additional
// collectors through the Register* methods; duplicate names are rejected.
//
// Handler exposes the registry in Prometheus text format for embedding into
// whatever HTTP mux the host application runs:
//
//	registry := metric.NewMetricsRegistry()
//	http.Handle("/metrics", metric.Handler(registry))
//
// All core metrics use the "basin3d" namespace, e.g.
// basin3d_queries_total{operation="monitoring_features"}.
package metric
