package provider

import (
	"context"
	"iter"
	"time"

	"github.com/BASIN-3D/basin3d/schema"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// DataSource describes one registered data provider. Immutable once
// registered.
type DataSource struct {
	// ID is the unique provider identifier, e.g. "USGS".
	ID string
	// IDPrefix namespaces canonical identifiers produced from this provider,
	// e.g. "USGS" in "USGS-09110000". Usually equal to ID.
	IDPrefix string
	// Name is the human-readable display name.
	Name string
	// Location is the provider's access location (base URL or path).
	Location string
	// Credentials is an opaque credential bag handed to the provider
	// implementation. The core never interprets it.
	Credentials map[string]string
}

// PrefixID applies the provider's identifier prefix to a native identifier,
// producing the canonical form.
func (ds DataSource) PrefixID(nativeID string) string {
	if nativeID == "" {
		return ""
	}
	return ds.IDPrefix + "-" + nativeID
}

// Provider is the capability interface implemented by each external data
// source integration. Implementations own all I/O, pagination, timeouts, and
// retries against their source; the synthesis core sees only the declared
// capabilities and the record sequences.
type Provider interface {
	// DataSource returns the provider's immutable registration record.
	DataSource() DataSource

	// FeatureTypes declares which canonical feature-type tags this provider
	// can produce.
	FeatureTypes() []vocabulary.FeatureType

	// SupportedFilters declares which optional query filters (schema.Filter*
	// names) the provider honors. Required filters and the datasource filter
	// need not be declared.
	SupportedFilters() []string

	// ListMonitoringFeatures returns a finite, non-restartable sequence of
	// raw features matching the translated query. A yielded non-nil error
	// terminates the sequence.
	ListMonitoringFeatures(ctx context.Context, q *schema.MonitoringFeatureQuery) iter.Seq2[RawFeature, error]

	// GetObservations returns a finite, non-restartable sequence of raw
	// observation series matching the translated query. A yielded non-nil
	// error terminates the sequence.
	GetObservations(ctx context.Context, q *schema.MeasurementTimeseriesTVPQuery) iter.Seq2[RawObservation, error]
}

// Coordinates is an optional geographic/vertical position for a raw feature.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	// Altitude is in the provider's vertical datum; nil when not reported.
	Altitude *float64
}

// RawFeature is a monitoring feature exactly as a provider reports it, before
// translation. Identifiers and vocabulary terms are provider-native.
type RawFeature struct {
	// ID is the provider-native feature identifier.
	ID string
	// FeatureType is the canonical feature type tag. Providers classify their
	// own features since type taxonomies rarely need vocabulary mapping.
	FeatureType vocabulary.FeatureType
	Name        string
	Description string
	// ObservedProperties lists provider vocabulary terms for the properties
	// measured at this feature.
	ObservedProperties []string
	// ParentFeatureIDs lists provider-native identifiers of parent features.
	ParentFeatureIDs []string
	Coordinates      *Coordinates
}

// RawPoint is a single time-value measurement as reported by a provider. The
// value is kept as the provider's literal string so the translator can detect
// non-numeric literals (e.g. detection-limit-censored values like "<0.01")
// instead of coercing them.
type RawPoint struct {
	Timestamp time.Time
	Value     string
	// Quality is the provider vocabulary term for this point's quality
	// assessment; empty when the provider reports none.
	Quality string
}

// RawObservation is one measurement time series as reported by a provider,
// before translation. Vocabulary fields are provider-native terms.
type RawObservation struct {
	// FeatureID is the provider-native identifier of the feature of interest.
	FeatureID string
	// FeatureType tags the feature of interest.
	FeatureType vocabulary.FeatureType
	// ObservedProperty is the provider vocabulary term for what was measured.
	// With compound mappings this single term may also determine the sampling
	// medium.
	ObservedProperty string
	// Unit is the provider-reported unit of measurement.
	Unit string
	// AggregationDuration is the provider vocabulary term for the time period
	// represented by one value; empty when the provider reports none.
	AggregationDuration string
	// Statistic is the provider vocabulary term for the statistical property
	// of the values; empty when the provider reports none.
	Statistic string
	// Points is the ordered series of raw time-value pairs.
	Points []RawPoint
}
