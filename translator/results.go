package translator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/schema"
	"github.com/BASIN-3D/basin3d/types"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// TranslateFeature turns one provider-native feature into a canonical
// monitoring feature. Identifiers gain the provider prefix; observed property
// terms resolve through forward lookups, with unmapped terms kept as
// NOT_SUPPORTED attributes.
func (t *Translator) TranslateFeature(ds provider.DataSource, raw provider.RawFeature) types.MonitoringFeature {
	out := types.MonitoringFeature{
		ID:          ds.PrefixID(raw.ID),
		NativeID:    raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		FeatureType: raw.FeatureType,
		DataSource:  ds,
	}

	for _, term := range raw.ObservedProperties {
		out.ObservedProperties = append(out.ObservedProperties, types.MappedAttribute{
			AttrType: vocabulary.AttributeObservedProperty,
			Mapping:  t.catalog.Forward(ds.ID, vocabulary.AttributeObservedProperty, term),
		})
	}
	for _, parent := range raw.ParentFeatureIDs {
		out.ParentFeatures = append(out.ParentFeatures, ds.PrefixID(parent))
	}
	if raw.Coordinates != nil {
		out.Coordinates = &types.Coordinates{
			Latitude:  raw.Coordinates.Latitude,
			Longitude: raw.Coordinates.Longitude,
			Altitude:  raw.Coordinates.Altitude,
		}
	}
	return out
}

// TranslateObservation turns one provider-native observation series into the
// canonical form. The observed property resolves through a forward lookup;
// when the mapping is compound it also yields the sampling medium. Raw values
// that do not parse as numbers are dropped from the series, with one message
// naming the dropped literals. Unmapped vocabulary resolves to NOT_SUPPORTED
// attributes rather than dropping the record, each unmapped term reported
// once per series.
func (t *Translator) TranslateObservation(ds provider.DataSource, raw provider.RawObservation, msgs *schema.MessageList) types.MeasurementTimeseriesTVPObservation {
	// One diagnostic per distinct unmapped term per series.
	seenUnmapped := make(map[string]bool)
	warnUnmapped := func(at vocabulary.AttributeType, term string) {
		key := string(at) + "\x00" + term
		if seenUnmapped[key] {
			return
		}
		seenUnmapped[key] = true
		msgs.Warn(ds.ID, fmt.Sprintf("%s term %q has no mapping in datasource %s", at, term, ds.ID))
	}

	opMapping := t.catalog.Forward(ds.ID, vocabulary.AttributeObservedProperty, raw.ObservedProperty)
	if opMapping.NotSupported() {
		msgs.Warn(ds.ID, fmt.Sprintf("observed property %q has no mapping in datasource %s", raw.ObservedProperty, ds.ID))
	}

	out := types.MeasurementTimeseriesTVPObservation{
		FeatureOfInterestID:   ds.PrefixID(raw.FeatureID),
		FeatureOfInterestType: raw.FeatureType,
		ObservedProperty: types.MappedAttribute{
			AttrType: vocabulary.AttributeObservedProperty,
			Mapping:  opMapping,
		},
		// A compound observed-property mapping carries the medium; otherwise
		// this resolves to NOT_SUPPORTED.
		SamplingMedium: types.MappedAttribute{
			AttrType: vocabulary.AttributeSamplingMedium,
			Mapping:  opMapping,
		},
		AggregationDuration: t.mappedOrZero(ds, vocabulary.AttributeAggregationDuration, raw.AggregationDuration, warnUnmapped),
		Statistic:           t.mappedOrZero(ds, vocabulary.AttributeStatistic, raw.Statistic, warnUnmapped),
		Unit:                raw.Unit,
		DataSource:          ds,
	}

	dropped := 0
	var badLiterals []string
	var qualities []string
	seenQuality := make(map[string]bool)
	for _, p := range raw.Points {
		v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
		if err != nil {
			dropped++
			if len(badLiterals) < maxReportedLiterals {
				badLiterals = append(badLiterals, strconv.Quote(p.Value))
			}
			continue
		}
		tvp := types.TimeValuePair{Timestamp: p.Timestamp, Value: v}
		if p.Quality != "" {
			tvp.Quality = types.MappedAttribute{
				AttrType: vocabulary.AttributeResultQuality,
				Mapping:  t.catalog.Forward(ds.ID, vocabulary.AttributeResultQuality, p.Quality),
			}
			if tvp.Quality.Mapping.NotSupported() {
				warnUnmapped(vocabulary.AttributeResultQuality, p.Quality)
			}
			if q := tvp.Quality.CanonicalVocab(); !seenQuality[q] {
				seenQuality[q] = true
				qualities = append(qualities, q)
			}
		}
		out.Values = append(out.Values, tvp)
	}
	out.ResultQuality = qualities

	if dropped > 0 {
		list := strings.Join(badLiterals, ", ")
		if dropped > len(badLiterals) {
			list += ", ..."
		}
		msgs.Warn(ds.ID, fmt.Sprintf("dropped %d of %d values for feature %s: not parsable as measurements (%s)",
			dropped, len(raw.Points), out.FeatureOfInterestID, list))
	}
	return out
}

// maxReportedLiterals caps how many unparsable values one drop message names.
const maxReportedLiterals = 5

// mappedOrZero resolves a provider term when the provider reported one. An
// empty term means unreported, which is distinct from unmapped, so it yields
// a zero-mapping attribute instead of the NOT_SUPPORTED sentinel. A term that
// resolves to the sentinel is reported through unmapped.
func (t *Translator) mappedOrZero(ds provider.DataSource, at vocabulary.AttributeType, term string, unmapped func(vocabulary.AttributeType, string)) types.MappedAttribute {
	if term == "" {
		return types.MappedAttribute{AttrType: at}
	}
	ma := types.MappedAttribute{AttrType: at, Mapping: t.catalog.Forward(ds.ID, at, term)}
	if ma.Mapping.NotSupported() {
		unmapped(at, term)
	}
	return ma
}
