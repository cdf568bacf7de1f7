package metric

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreMetricsRecording(t *testing.T) {
	r := NewMetricsRegistry()
	m := r.CoreMetrics()

	m.RecordQuery("monitoring_features")
	m.RecordQuery("monitoring_features")
	m.RecordRecords("monitoring_features", "USGS", 12)
	m.RecordProviderError("USGS")
	m.RecordProviderSkipped("EPA", "unsupported_feature_type")
	m.RecordMessage("WARN")
	m.SetCatalogTableRows("USGS", 42)
	m.SetRegisteredSources(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("monitoring_features")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues("monitoring_features", "USGS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderErrors.WithLabelValues("USGS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProvidersSkipped.WithLabelValues("EPA", "unsupported_feature_type")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.CatalogTableRows.WithLabelValues("USGS")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegisteredSources))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_ops_total"})
	require.NoError(t, r.RegisterCounter("synthesizer", "test_ops_total", counter))

	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_ops_total"})
	err := r.RegisterCounter("synthesizer", "test_ops_total", other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestUnregister(t *testing.T) {
	r := NewMetricsRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_active"})
	require.NoError(t, r.RegisterGauge("catalog", "test_active", gauge))
	assert.True(t, r.Unregister("catalog", "test_active"))
	assert.False(t, r.Unregister("catalog", "test_active"))

	// Re-registration works after unregistering.
	require.NoError(t, r.RegisterGauge("catalog", "test_active", gauge))
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	a := NewMetricsRegistry()
	b := NewMetricsRegistry()

	a.CoreMetrics().RecordQuery("monitoring_features")
	assert.Equal(t, 1.0, testutil.ToFloat64(a.CoreMetrics().QueriesTotal.WithLabelValues("monitoring_features")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CoreMetrics().QueriesTotal.WithLabelValues("monitoring_features")))
}

func TestHandlerServesMetrics(t *testing.T) {
	r := NewMetricsRegistry()
	r.CoreMetrics().RecordQuery("monitoring_features")

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
