package schema

import (
	"fmt"
	"time"

	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// Synthesis operation names, used for filter-support declarations and metric
// labels.
const (
	OperationMonitoringFeatures                  = "monitoring_features"
	OperationMeasurementTimeseriesTVPObservation = "measurement_timeseries_tvp_observations"
)

// Recognized filter names. Providers declare which optional filters they honor
// using these names; the builders below reject anything else.
const (
	FilterDatasource          = "datasource"
	FilterID                  = "id"
	FilterFeatureType         = "feature_type"
	FilterMonitoringFeature   = "monitoring_feature"
	FilterParentFeature       = "parent_feature"
	FilterObservedProperty    = "observed_property"
	FilterStartDate           = "start_date"
	FilterEndDate             = "end_date"
	FilterAggregationDuration = "aggregation_duration"
	FilterStatistic           = "statistic"
	FilterResultQuality       = "result_quality"
	FilterSamplingMedium      = "sampling_medium"
)

// DateFormat is the wire format for date filters.
const DateFormat = "2006-01-02"

// MonitoringFeatureQuery requests monitoring features. All filters are
// optional; ID, when set, takes precedence over MonitoringFeature.
//
// ID, MonitoringFeature, and ParentFeature hold canonical, provider-prefixed
// identifiers (e.g. "USGS-09110000") until the translator rewrites them into
// provider-native identifiers.
type MonitoringFeatureQuery struct {
	// Datasource restricts the query to the listed provider ids.
	Datasource []string
	// ID requests a single monitoring feature by canonical identifier.
	ID string
	// FeatureType filters by canonical feature type tag.
	FeatureType vocabulary.FeatureType
	// MonitoringFeature filters by canonical monitoring feature identifiers.
	MonitoringFeature []string
	// ParentFeature filters by canonical parent feature identifiers. Only
	// providers that declare support for this filter receive it.
	ParentFeature []string

	translated       bool
	translationValid bool
}

// Validate type- and format-checks every filter. It returns a fatal
// classified error on the first violation; a valid query returns nil.
func (q *MonitoringFeatureQuery) Validate() error {
	if q.FeatureType != "" {
		if _, ok := vocabulary.ParseFeatureType(string(q.FeatureType)); !ok {
			return errors.WrapFatal(
				fmt.Errorf("%w: %s %q is not a feature type", errors.ErrInvalidFilter, FilterFeatureType, q.FeatureType),
				"MonitoringFeatureQuery", "Validate", "feature type check")
		}
	}
	for _, set := range []struct {
		name string
		ids  []string
	}{
		{FilterDatasource, q.Datasource},
		{FilterMonitoringFeature, q.MonitoringFeature},
		{FilterParentFeature, q.ParentFeature},
	} {
		for _, id := range set.ids {
			if id == "" {
				return errors.WrapFatal(
					fmt.Errorf("%w: %s contains an empty identifier", errors.ErrInvalidFilter, set.name),
					"MonitoringFeatureQuery", "Validate", "identifier check")
			}
		}
	}
	return nil
}

// Clone returns a deep copy, used by the translator to rewrite filters
// per provider without mutating the caller's query.
func (q *MonitoringFeatureQuery) Clone() *MonitoringFeatureQuery {
	out := *q
	out.Datasource = cloneStrings(q.Datasource)
	out.MonitoringFeature = cloneStrings(q.MonitoringFeature)
	out.ParentFeature = cloneStrings(q.ParentFeature)
	return &out
}

// MarkTranslated records that this query has been translated into provider
// vocabulary and whether the translation produced a usable query.
func (q *MonitoringFeatureQuery) MarkTranslated(valid bool) {
	q.translated = true
	q.translationValid = valid
}

// Translated reports whether the query has been through the translator.
func (q *MonitoringFeatureQuery) Translated() bool { return q.translated }

// TranslationValid reports whether the translated query retained at least one
// usable provider term for every filter that was specified. Untranslated
// queries report false.
func (q *MonitoringFeatureQuery) TranslationValid() bool {
	return q.translated && q.translationValid
}

// MeasurementTimeseriesTVPQuery requests measurement time-value-pair series
// observations. MonitoringFeature, ObservedProperty, and StartDate are
// required.
//
// Mapped filters (ObservedProperty through SamplingMedium) hold canonical
// vocabulary terms until translation, after which they hold provider
// vocabulary terms. AggregationDuration carries at most one canonical term;
// after translation it may expand to several provider terms.
type MeasurementTimeseriesTVPQuery struct {
	// Datasource restricts the query to the listed provider ids.
	Datasource []string
	// MonitoringFeature filters by canonical monitoring feature identifiers. Required.
	MonitoringFeature []string
	// ObservedProperty filters by canonical observed property vocabulary. Required.
	ObservedProperty []string
	// StartDate bounds the series on or after this date. Required.
	StartDate time.Time
	// EndDate bounds the series on or before this date. Zero means "now";
	// Validate fills the default in.
	EndDate time.Time
	// AggregationDuration filters by time period represented by one value.
	// Validate coerces any value other than NONE to DAY, since providers
	// serve daily aggregates.
	AggregationDuration []string
	// Statistic filters by statistical property of the values.
	Statistic []string
	// ResultQuality filters by per-point quality assessment.
	ResultQuality []string
	// SamplingMedium filters by the medium the property was measured in.
	SamplingMedium []string

	translated       bool
	translationValid bool
}

// Validate type- and format-checks every filter, fills in defaults
// (AggregationDuration DAY, EndDate now), and returns a fatal classified
// error on the first violation.
func (q *MeasurementTimeseriesTVPQuery) Validate() error {
	if len(q.MonitoringFeature) == 0 {
		return errors.WrapFatal(
			fmt.Errorf("%w: %s", errors.ErrMissingFilter, FilterMonitoringFeature),
			"MeasurementTimeseriesTVPQuery", "Validate", "required filter check")
	}
	if len(q.ObservedProperty) == 0 {
		return errors.WrapFatal(
			fmt.Errorf("%w: %s", errors.ErrMissingFilter, FilterObservedProperty),
			"MeasurementTimeseriesTVPQuery", "Validate", "required filter check")
	}
	if q.StartDate.IsZero() {
		return errors.WrapFatal(
			fmt.Errorf("%w: %s", errors.ErrMissingFilter, FilterStartDate),
			"MeasurementTimeseriesTVPQuery", "Validate", "required filter check")
	}
	if q.EndDate.IsZero() {
		q.EndDate = time.Now().UTC()
	}
	if q.EndDate.Before(q.StartDate) {
		return errors.WrapFatal(
			fmt.Errorf("%w: %s precedes %s", errors.ErrInvalidFilter, FilterEndDate, FilterStartDate),
			"MeasurementTimeseriesTVPQuery", "Validate", "date range check")
	}

	if len(q.AggregationDuration) == 0 {
		q.AggregationDuration = []string{vocabulary.AggregationDay}
	}
	if len(q.AggregationDuration) > 1 {
		return errors.WrapFatal(
			fmt.Errorf("%w: %s accepts a single value", errors.ErrInvalidFilter, FilterAggregationDuration),
			"MeasurementTimeseriesTVPQuery", "Validate", "aggregation duration check")
	}

	// Providers aggregate series to daily values; only NONE opts out.
	if term := q.AggregationDuration[0]; term != vocabulary.AggregationNone &&
		vocabulary.ValidTerm(vocabulary.AttributeAggregationDuration, term) {
		q.AggregationDuration = []string{vocabulary.AggregationDay}
	}

	for _, set := range []struct {
		name  string
		attr  vocabulary.AttributeType
		terms []string
	}{
		{FilterAggregationDuration, vocabulary.AttributeAggregationDuration, q.AggregationDuration},
		{FilterStatistic, vocabulary.AttributeStatistic, q.Statistic},
		{FilterResultQuality, vocabulary.AttributeResultQuality, q.ResultQuality},
		{FilterSamplingMedium, vocabulary.AttributeSamplingMedium, q.SamplingMedium},
	} {
		for _, term := range set.terms {
			if !vocabulary.ValidTerm(set.attr, term) {
				return errors.WrapFatal(
					fmt.Errorf("%w: %s value %q is not a canonical %s term",
						errors.ErrInvalidFilter, set.name, term, set.attr),
					"MeasurementTimeseriesTVPQuery", "Validate", "vocabulary term check")
			}
		}
	}
	return nil
}

// Clone returns a deep copy, used by the translator to rewrite filters per
// provider without mutating the caller's query.
func (q *MeasurementTimeseriesTVPQuery) Clone() *MeasurementTimeseriesTVPQuery {
	out := *q
	out.Datasource = cloneStrings(q.Datasource)
	out.MonitoringFeature = cloneStrings(q.MonitoringFeature)
	out.ObservedProperty = cloneStrings(q.ObservedProperty)
	out.AggregationDuration = cloneStrings(q.AggregationDuration)
	out.Statistic = cloneStrings(q.Statistic)
	out.ResultQuality = cloneStrings(q.ResultQuality)
	out.SamplingMedium = cloneStrings(q.SamplingMedium)
	return &out
}

// MappedFields returns the attribute types this query filters on that go
// through catalog mapping, in translation order. ObservedProperty comes first
// because it is the most likely member of compound mappings.
func (q *MeasurementTimeseriesTVPQuery) MappedFields() []vocabulary.AttributeType {
	return []vocabulary.AttributeType{
		vocabulary.AttributeObservedProperty,
		vocabulary.AttributeAggregationDuration,
		vocabulary.AttributeStatistic,
		vocabulary.AttributeResultQuality,
		vocabulary.AttributeSamplingMedium,
	}
}

// MappedValues returns the filter values for a mapped attribute type.
func (q *MeasurementTimeseriesTVPQuery) MappedValues(at vocabulary.AttributeType) []string {
	switch at {
	case vocabulary.AttributeObservedProperty:
		return q.ObservedProperty
	case vocabulary.AttributeAggregationDuration:
		return q.AggregationDuration
	case vocabulary.AttributeStatistic:
		return q.Statistic
	case vocabulary.AttributeResultQuality:
		return q.ResultQuality
	case vocabulary.AttributeSamplingMedium:
		return q.SamplingMedium
	}
	return nil
}

// SetMappedValues replaces the filter values for a mapped attribute type.
// The translator uses this to rewrite canonical terms to provider terms.
func (q *MeasurementTimeseriesTVPQuery) SetMappedValues(at vocabulary.AttributeType, values []string) {
	switch at {
	case vocabulary.AttributeObservedProperty:
		q.ObservedProperty = values
	case vocabulary.AttributeAggregationDuration:
		q.AggregationDuration = values
	case vocabulary.AttributeStatistic:
		q.Statistic = values
	case vocabulary.AttributeResultQuality:
		q.ResultQuality = values
	case vocabulary.AttributeSamplingMedium:
		q.SamplingMedium = values
	}
}

// MarkTranslated records that this query has been translated into provider
// vocabulary and whether the translation produced a usable query.
func (q *MeasurementTimeseriesTVPQuery) MarkTranslated(valid bool) {
	q.translated = true
	q.translationValid = valid
}

// Translated reports whether the query has been through the translator.
func (q *MeasurementTimeseriesTVPQuery) Translated() bool { return q.translated }

// TranslationValid reports whether the translated query retained at least one
// usable provider term for every filter that was specified. Untranslated
// queries report false.
func (q *MeasurementTimeseriesTVPQuery) TranslationValid() bool {
	return q.translated && q.translationValid
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
