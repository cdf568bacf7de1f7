package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an http.Handler serving the registry's metrics in
// Prometheus text format, for mounting into the host application's mux.
func Handler(registry *MetricsRegistry) http.Handler {
	return promhttp.HandlerFor(registry.PrometheusRegistry(), promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
