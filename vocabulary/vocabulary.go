package vocabulary

import "strings"

// NoMappingText is the reserved canonical term representing "no mapping
// found". It is a first-class vocabulary value, never an absence: forward and
// reverse catalog lookups that find nothing resolve to this sentinel.
const NoMappingText = "NOT_SUPPORTED"

// MappingDelimiter joins the parts of a compound vocabulary string, both for
// attribute types ("OBSERVED_PROPERTY:SAMPLING_MEDIUM") and for canonical
// terms ("RDC:WATER").
const MappingDelimiter = ":"

// AttributeType identifies a category of vocabulary that is mapped between
// provider and canonical terms.
type AttributeType string

const (
	// AttributeObservedProperty is the variable being measured (open term set,
	// defined by the observed-property variable vocabulary).
	AttributeObservedProperty AttributeType = "OBSERVED_PROPERTY"
	// AttributeAggregationDuration is the time period represented by one value.
	AttributeAggregationDuration AttributeType = "AGGREGATION_DURATION"
	// AttributeStatistic is the statistical property of an observed value.
	AttributeStatistic AttributeType = "STATISTIC"
	// AttributeResultQuality is the quality assessment of an observed value.
	AttributeResultQuality AttributeType = "RESULT_QUALITY"
	// AttributeSamplingMedium is the medium a property was measured in.
	AttributeSamplingMedium AttributeType = "SAMPLING_MEDIUM"
)

// String returns the string form of the attribute type.
func (at AttributeType) String() string {
	return string(at)
}

// AttributeTypes returns all supported attribute types.
func AttributeTypes() []AttributeType {
	return []AttributeType{
		AttributeObservedProperty,
		AttributeAggregationDuration,
		AttributeStatistic,
		AttributeResultQuality,
		AttributeSamplingMedium,
	}
}

// ParseAttributeType normalizes a string to an AttributeType. The bool result
// reports whether the string named a supported type. Compound attribute type
// strings are not accepted here; split them first.
func ParseAttributeType(s string) (AttributeType, bool) {
	at := AttributeType(strings.ToUpper(strings.TrimSpace(s)))
	switch at {
	case AttributeObservedProperty, AttributeAggregationDuration,
		AttributeStatistic, AttributeResultQuality, AttributeSamplingMedium:
		return at, true
	}
	return "", false
}

// IsCompound reports whether a vocabulary or attribute-type string is
// compound, i.e. contains the mapping delimiter.
func IsCompound(s string) bool {
	return strings.Contains(s, MappingDelimiter)
}

// SplitCompound splits a compound vocabulary string into its parts. A
// non-compound string yields a single-element slice.
func SplitCompound(s string) []string {
	return strings.Split(s, MappingDelimiter)
}

// JoinCompound joins vocabulary parts with the mapping delimiter.
func JoinCompound(parts []string) string {
	return strings.Join(parts, MappingDelimiter)
}

// Aggregation duration terms. Time period represented by a single observation
// value; NONE marks instantaneous values.
const (
	AggregationYear   = "YEAR"
	AggregationMonth  = "MONTH"
	AggregationDay    = "DAY"
	AggregationHour   = "HOUR"
	AggregationMinute = "MINUTE"
	AggregationSecond = "SECOND"
	AggregationNone   = "NONE"
)

// Statistic terms.
const (
	StatisticInstant = "INSTANT"
	StatisticMean    = "MEAN"
	StatisticMin     = "MIN"
	StatisticMax     = "MAX"
	StatisticTotal   = "TOTAL"
)

// Result quality terms.
const (
	// QualityUnvalidated: raw or unchecked. Synonyms: Unchecked, Preliminary, No QC.
	QualityUnvalidated = "UNVALIDATED"
	// QualityValidated: checked with no issues identified. Synonyms: Accepted, Pass, Good.
	QualityValidated = "VALIDATED"
	// QualityRejected: identified as poor quality. Synonyms: Poor, Bad, Unaccepted.
	QualityRejected = "REJECTED"
	// QualitySuspected: quality is suspect. Synonyms: Questionable, Doubtful, Flagged.
	QualitySuspected = "SUSPECTED"
	// QualityEstimated: estimated. Synonyms: Interpolated, Modeled.
	QualityEstimated = "ESTIMATED"
)

// Sampling medium terms.
const (
	MediumSolidPhase    = "SOLID_PHASE"
	MediumWater         = "WATER"
	MediumGas           = "GAS"
	MediumOther         = "OTHER"
	MediumNotApplicable = "NOT_APPLICABLE"
)

// TermsFor returns the closed canonical term set for an attribute type. The
// NOT_SUPPORTED sentinel is always a member. OBSERVED_PROPERTY is an open set
// and returns nil; its terms come from the observed-property variable
// vocabulary loaded into the catalog.
func TermsFor(at AttributeType) []string {
	switch at {
	case AttributeAggregationDuration:
		return []string{AggregationYear, AggregationMonth, AggregationDay,
			AggregationHour, AggregationMinute, AggregationSecond, AggregationNone, NoMappingText}
	case AttributeStatistic:
		return []string{StatisticInstant, StatisticMean, StatisticMin,
			StatisticMax, StatisticTotal, NoMappingText}
	case AttributeResultQuality:
		return []string{QualityUnvalidated, QualityValidated, QualityRejected,
			QualitySuspected, QualityEstimated, NoMappingText}
	case AttributeSamplingMedium:
		return []string{MediumSolidPhase, MediumWater, MediumGas,
			MediumOther, MediumNotApplicable, NoMappingText}
	}
	return nil
}

// ValidTerm reports whether term is a canonical vocabulary term for the given
// attribute type. OBSERVED_PROPERTY terms are an open set, so any non-empty
// term is accepted; membership is checked against the catalog's variable store
// instead.
func ValidTerm(at AttributeType, term string) bool {
	if at == AttributeObservedProperty {
		return term != ""
	}
	for _, t := range TermsFor(at) {
		if t == term {
			return true
		}
	}
	return false
}

// FeatureType tags the kind of physical or conceptual entity a monitoring
// feature represents.
type FeatureType string

// Feature types, ordered roughly from largest spatial extent to smallest.
const (
	FeatureTypeRegion         FeatureType = "REGION"
	FeatureTypeSubregion      FeatureType = "SUBREGION"
	FeatureTypeBasin          FeatureType = "BASIN"
	FeatureTypeSubbasin       FeatureType = "SUBBASIN"
	FeatureTypeWatershed      FeatureType = "WATERSHED"
	FeatureTypeSubwatershed   FeatureType = "SUBWATERSHED"
	FeatureTypeSite           FeatureType = "SITE"
	FeatureTypePlot           FeatureType = "PLOT"
	FeatureTypeHorizontalPath FeatureType = "HORIZONTAL_PATH"
	FeatureTypeVerticalPath   FeatureType = "VERTICAL_PATH"
	FeatureTypePoint          FeatureType = "POINT"
)

// String returns the string form of the feature type.
func (ft FeatureType) String() string {
	return string(ft)
}

// FeatureTypes returns all supported feature types.
func FeatureTypes() []FeatureType {
	return []FeatureType{
		FeatureTypeRegion, FeatureTypeSubregion, FeatureTypeBasin,
		FeatureTypeSubbasin, FeatureTypeWatershed, FeatureTypeSubwatershed,
		FeatureTypeSite, FeatureTypePlot, FeatureTypeHorizontalPath,
		FeatureTypeVerticalPath, FeatureTypePoint,
	}
}

// ParseFeatureType normalizes a string to a FeatureType. Matching is
// case-insensitive. The bool result reports whether the string named a
// supported feature type.
func ParseFeatureType(s string) (FeatureType, bool) {
	ft := FeatureType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range FeatureTypes() {
		if ft == known {
			return ft, true
		}
	}
	return "", false
}
