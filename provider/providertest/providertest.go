// Package providertest provides an in-memory Provider implementation and
// canned catalog fixtures for testing the synthesis core without network
// providers.
package providertest

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/BASIN-3D/basin3d/catalog"
	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/schema"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// Provider is an in-memory provider.Provider. Populate the canned records,
// register it, and inspect the captured queries after running an operation.
type Provider struct {
	DS      provider.DataSource
	Types   []vocabulary.FeatureType
	Filters []string

	Features     []provider.RawFeature
	Observations []provider.RawObservation

	// FeatureErr / ObservationErr, when set, are yielded after the canned
	// records to simulate a provider failing mid-stream.
	FeatureErr     error
	ObservationErr error

	mu                   sync.Mutex
	lastFeatureQuery     *schema.MonitoringFeatureQuery
	lastObservationQuery *schema.MeasurementTimeseriesTVPQuery
}

var _ provider.Provider = (*Provider)(nil)

// New returns a provider with sensible defaults: it produces POINT features
// and supports every optional filter.
func New(ds provider.DataSource) *Provider {
	return &Provider{
		DS:    ds,
		Types: []vocabulary.FeatureType{vocabulary.FeatureTypePoint},
		Filters: []string{
			schema.FilterParentFeature,
			schema.FilterStatistic,
			schema.FilterResultQuality,
			schema.FilterSamplingMedium,
		},
	}
}

// DataSource implements provider.Provider.
func (p *Provider) DataSource() provider.DataSource { return p.DS }

// FeatureTypes implements provider.Provider.
func (p *Provider) FeatureTypes() []vocabulary.FeatureType { return p.Types }

// SupportedFilters implements provider.Provider.
func (p *Provider) SupportedFilters() []string { return p.Filters }

// ListMonitoringFeatures yields the canned features, filtered by the query's
// native identifiers when set, then the configured error.
func (p *Provider) ListMonitoringFeatures(_ context.Context, q *schema.MonitoringFeatureQuery) iter.Seq2[provider.RawFeature, error] {
	p.mu.Lock()
	p.lastFeatureQuery = q
	p.mu.Unlock()

	return func(yield func(provider.RawFeature, error) bool) {
		for _, f := range p.Features {
			if q.ID != "" && f.ID != q.ID {
				continue
			}
			if len(q.MonitoringFeature) > 0 && !slices.Contains(q.MonitoringFeature, f.ID) {
				continue
			}
			if q.FeatureType != "" && f.FeatureType != q.FeatureType {
				continue
			}
			if !yield(f, nil) {
				return
			}
		}
		if p.FeatureErr != nil {
			yield(provider.RawFeature{}, p.FeatureErr)
		}
	}
}

// GetObservations yields the canned observations, filtered by the query's
// native identifiers and observed property terms when set, then the
// configured error.
func (p *Provider) GetObservations(_ context.Context, q *schema.MeasurementTimeseriesTVPQuery) iter.Seq2[provider.RawObservation, error] {
	p.mu.Lock()
	p.lastObservationQuery = q
	p.mu.Unlock()

	return func(yield func(provider.RawObservation, error) bool) {
		for _, o := range p.Observations {
			if len(q.MonitoringFeature) > 0 && !slices.Contains(q.MonitoringFeature, o.FeatureID) {
				continue
			}
			if len(q.ObservedProperty) > 0 && !slices.Contains(q.ObservedProperty, o.ObservedProperty) {
				continue
			}
			if !yield(o, nil) {
				return
			}
		}
		if p.ObservationErr != nil {
			yield(provider.RawObservation{}, p.ObservationErr)
		}
	}
}

// LastFeatureQuery returns the translated query the provider last received.
func (p *Provider) LastFeatureQuery() *schema.MonitoringFeatureQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFeatureQuery
}

// LastObservationQuery returns the translated query the provider last
// received.
func (p *Provider) LastObservationQuery() *schema.MeasurementTimeseriesTVPQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastObservationQuery
}

// Variables returns a small canonical variable vocabulary for tests.
func Variables() []vocabulary.ObservedPropertyVariable {
	return []vocabulary.ObservedPropertyVariable{
		{Vocab: "ACT", FullName: "Acetate", Categories: []string{"Biogeochemistry", "Anions"}, Units: "mM"},
		{Vocab: "RDC", FullName: "River Discharge", Categories: []string{"Hydrogeology", "Discharge"}, Units: "m3/s"},
		{Vocab: "WT", FullName: "Water Temperature", Categories: []string{"Hydrogeology"}, Units: "C"},
	}
}

// MappingRows returns a mapping table exercising compound and simple
// mappings for tests.
func MappingRows() []catalog.MappingRow {
	return []catalog.MappingRow{
		{AttrType: "OBSERVED_PROPERTY:SAMPLING_MEDIUM", CanonicalVocab: "ACT:WATER", ProviderVocab: "Acetate", ProviderDesc: "acetate in water"},
		{AttrType: "OBSERVED_PROPERTY:SAMPLING_MEDIUM", CanonicalVocab: "RDC:WATER", ProviderVocab: "00060", ProviderDesc: "stream discharge"},
		{AttrType: "OBSERVED_PROPERTY:SAMPLING_MEDIUM", CanonicalVocab: "WT:WATER", ProviderVocab: "00010", ProviderDesc: "water temperature"},
		{AttrType: "STATISTIC", CanonicalVocab: "MEAN", ProviderVocab: "00003", ProviderDesc: "mean"},
		{AttrType: "STATISTIC", CanonicalVocab: "MIN", ProviderVocab: "00002", ProviderDesc: "minimum"},
		{AttrType: "RESULT_QUALITY", CanonicalVocab: "VALIDATED", ProviderVocab: "A", ProviderDesc: "approved"},
		{AttrType: "RESULT_QUALITY", CanonicalVocab: "UNVALIDATED", ProviderVocab: "P", ProviderDesc: "provisional"},
		{AttrType: "AGGREGATION_DURATION", CanonicalVocab: "DAY", ProviderVocab: "daily", ProviderDesc: "daily values"},
	}
}
