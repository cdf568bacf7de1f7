package types

import (
	"time"

	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// Coordinates is the geographic/vertical position of a monitoring feature.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Altitude is nil when the provider reports no vertical position.
	Altitude *float64 `json:"altitude,omitempty"`
}

// MonitoringFeature is a physical or conceptual location/entity an
// observation characterizes, translated into canonical form.
type MonitoringFeature struct {
	// ID is the canonical, provider-prefixed identifier, e.g. "USGS-09110000".
	ID string `json:"id"`
	// NativeID is the provider's own identifier, e.g. "09110000".
	NativeID    string                 `json:"native_id"`
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	FeatureType vocabulary.FeatureType `json:"feature_type"`
	// ObservedProperties annotates the properties available at this feature;
	// unmapped provider terms appear as NOT_SUPPORTED attributes rather than
	// being dropped.
	ObservedProperties []MappedAttribute `json:"observed_properties,omitempty"`
	// ParentFeatures holds canonical identifiers of parent features.
	ParentFeatures []string     `json:"parent_features,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	// DataSource records which provider produced this feature.
	DataSource provider.DataSource `json:"-"`
}

// TimeValuePair is one measurement in a time series with its per-point
// quality annotation.
type TimeValuePair struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	// Quality carries the per-point result-quality mapping; the zero value
	// means the provider reported no quality for this point.
	Quality MappedAttribute `json:"-"`
}

// MeasurementTimeseriesTVPObservation is a series of numeric observations in
// time-value-pair form, grouped by time, with its categorical metadata
// resolved through the catalog.
type MeasurementTimeseriesTVPObservation struct {
	// FeatureOfInterestID is the canonical identifier of the observed feature.
	FeatureOfInterestID string `json:"feature_of_interest_id"`
	// FeatureOfInterestType tags the observed feature.
	FeatureOfInterestType vocabulary.FeatureType `json:"feature_of_interest_type"`
	// ObservedProperty resolves what was measured.
	ObservedProperty MappedAttribute `json:"-"`
	// SamplingMedium resolves the medium the property was measured in, often
	// from the same compound mapping as ObservedProperty.
	SamplingMedium MappedAttribute `json:"-"`
	// AggregationDuration resolves the time period one value represents.
	AggregationDuration MappedAttribute `json:"-"`
	// Statistic resolves the statistical property of the values.
	Statistic MappedAttribute `json:"-"`
	// Unit is the provider-reported unit of measurement.
	Unit string `json:"unit"`
	// Values is the ordered series; points whose raw value could not be
	// parsed as a measurement are absent.
	Values []TimeValuePair `json:"values"`
	// ResultQuality summarizes the canonical quality terms present across the
	// series' points.
	ResultQuality []string `json:"result_quality,omitempty"`
	// DataSource records which provider produced this observation.
	DataSource provider.DataSource `json:"-"`
}
