package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the core synthesis metrics, pre-registered by every
// MetricsRegistry.
type Metrics struct {
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	RecordsTotal      *prometheus.CounterVec
	ProviderErrors    *prometheus.CounterVec
	ProvidersSkipped  *prometheus.CounterVec
	MessagesTotal     *prometheus.CounterVec
	CatalogLookups    *prometheus.CounterVec
	CatalogTableRows  *prometheus.GaugeVec
	RegisteredSources prometheus.Gauge
}

// NewMetrics creates the core synthesis metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "basin3d",
				Name:      "queries_total",
				Help:      "Total number of synthesis queries started",
			},
			[]string{"operation"},
		),

		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "basin3d",
				Name:      "query_duration_seconds",
				Help:      "End-to-end synthesis query duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		RecordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "basin3d",
				Name:      "records_total",
				Help:      "Total number of translated records produced",
			},
			[]string{"operation", "datasource"},
		),

		ProviderErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "basin3d",
				Subsystem: "provider",
				Name:      "errors_total",
				Help:      "Total number of provider fetch failures",
			},
			[]string{"datasource"},
		),

		ProvidersSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "basin3d",
				Subsystem: "provider",
				Name:      "skipped_total",
				Help:      "Total number of providers skipped during query dispatch",
			},
			[]string{"datasource", "reason"},
		),

		MessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "basin3d",
				Name:      "messages_total",
				Help:      "Total number of synthesis messages accumulated",
			},
			[]string{"level"},
		),

		CatalogLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "basin3d",
				Subsystem: "catalog",
				Name:      "lookups_total",
				Help:      "Total number of catalog forward lookups by outcome",
			},
			[]string{"attr_type", "result"},
		),

		CatalogTableRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "basin3d",
				Subsystem: "catalog",
				Name:      "table_rows",
				Help:      "Number of usable mapping rows loaded per datasource",
			},
			[]string{"datasource"},
		),

		RegisteredSources: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "basin3d",
				Name:      "registered_datasources",
				Help:      "Number of registered data source providers",
			},
		),
	}
}

// RecordQuery counts one started query for an operation.
func (m *Metrics) RecordQuery(operation string) {
	m.QueriesTotal.WithLabelValues(operation).Inc()
}

// ObserveQueryDuration records one completed query's duration.
func (m *Metrics) ObserveQueryDuration(operation string, seconds float64) {
	m.QueryDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordRecords counts translated records produced for one provider.
func (m *Metrics) RecordRecords(operation, datasource string, n int) {
	m.RecordsTotal.WithLabelValues(operation, datasource).Add(float64(n))
}

// RecordProviderError counts one provider fetch failure.
func (m *Metrics) RecordProviderError(datasource string) {
	m.ProviderErrors.WithLabelValues(datasource).Inc()
}

// RecordProviderSkipped counts one provider skipped during dispatch.
func (m *Metrics) RecordProviderSkipped(datasource, reason string) {
	m.ProvidersSkipped.WithLabelValues(datasource, reason).Inc()
}

// RecordMessage counts one accumulated synthesis message.
func (m *Metrics) RecordMessage(level string) {
	m.MessagesTotal.WithLabelValues(level).Inc()
}

// RecordCatalogLookup counts one forward lookup. result is "hit" when a
// mapping row matched and "sentinel" when the lookup fell through to the
// NOT_SUPPORTED sentinel.
func (m *Metrics) RecordCatalogLookup(attrType, result string) {
	m.CatalogLookups.WithLabelValues(attrType, result).Inc()
}

// SetCatalogTableRows records a provider's loaded mapping table size.
func (m *Metrics) SetCatalogTableRows(datasource string, rows int) {
	m.CatalogTableRows.WithLabelValues(datasource).Set(float64(rows))
}

// SetRegisteredSources records the number of registered providers.
func (m *Metrics) SetRegisteredSources(n int) {
	m.RegisteredSources.Set(float64(n))
}

// collectors returns every core metric for registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.QueriesTotal,
		m.QueryDuration,
		m.RecordsTotal,
		m.ProviderErrors,
		m.ProvidersSkipped,
		m.MessagesTotal,
		m.CatalogLookups,
		m.CatalogTableRows,
		m.RegisteredSources,
	}
}
