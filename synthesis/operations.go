package synthesis

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/schema"
	"github.com/BASIN-3D/basin3d/types"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// MonitoringFeatures queries every eligible provider for monitoring features
// and streams the translated results. The id filter takes precedence over
// monitoring_feature when both are set. Providers that cannot produce the
// requested feature type, or whose translated query came back unusable, are
// skipped with a message.
func (s *Synthesizer) MonitoringFeatures(ctx context.Context, q *schema.MonitoringFeatureQuery) (*Response[types.MonitoringFeature], error) {
	if q == nil {
		q = &schema.MonitoringFeatureQuery{}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	if s.metrics != nil {
		s.metrics.RecordQuery(schema.OperationMonitoringFeatures)
	}

	msgs := schema.NewMessageList()
	working := q.Clone()
	if working.ID != "" && len(working.MonitoringFeature) > 0 {
		msgs.Warn("", fmt.Sprintf("%s filter takes precedence; %s is ignored",
			schema.FilterID, schema.FilterMonitoringFeature))
		working.MonitoringFeature = nil
	}

	var streams []providerStream[types.MonitoringFeature]
	for _, p := range s.eligibleProviders(working.Datasource, msgs) {
		ds := p.DataSource()
		if working.FeatureType != "" && !slices.Contains(p.FeatureTypes(), working.FeatureType) {
			s.skip(ds, "unsupported_feature_type",
				fmt.Sprintf("datasource %s does not produce feature type %s", ds.ID, working.FeatureType), msgs)
			continue
		}

		pq := working.Clone()
		if len(pq.ParentFeature) > 0 && !supportsFilter(p, schema.FilterParentFeature) {
			msgs.Warn(ds.ID, fmt.Sprintf("datasource %s does not support the %s filter; ignoring it",
				ds.ID, schema.FilterParentFeature))
			pq.ParentFeature = nil
		}

		translated := s.translator.TranslateMonitoringFeatureQuery(ds, pq, msgs)
		if !translated.TranslationValid() {
			s.skip(ds, "invalid_translation",
				fmt.Sprintf("query has no usable filter values for datasource %s", ds.ID), msgs)
			continue
		}

		streams = append(streams, s.featureStream(ctx, p, translated))
	}

	results := merge(s, schema.OperationMonitoringFeatures, streams, msgs, start)
	return newResponse(results, msgs), nil
}

// MeasurementTimeseriesTVPObservations queries every eligible provider for
// measurement time series and streams the translated results. Optional
// filters a provider does not declare support for are dropped for that
// provider with a message; providers whose translated query came back
// unusable are skipped.
func (s *Synthesizer) MeasurementTimeseriesTVPObservations(ctx context.Context, q *schema.MeasurementTimeseriesTVPQuery) (*Response[types.MeasurementTimeseriesTVPObservation], error) {
	if q == nil {
		q = &schema.MeasurementTimeseriesTVPQuery{}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	if s.metrics != nil {
		s.metrics.RecordQuery(schema.OperationMeasurementTimeseriesTVPObservation)
	}

	msgs := schema.NewMessageList()

	var streams []providerStream[types.MeasurementTimeseriesTVPObservation]
	for _, p := range s.eligibleProviders(q.Datasource, msgs) {
		ds := p.DataSource()

		pq := q.Clone()
		for _, opt := range []struct {
			name  string
			clear func(*schema.MeasurementTimeseriesTVPQuery)
		}{
			{schema.FilterStatistic, func(q *schema.MeasurementTimeseriesTVPQuery) { q.Statistic = nil }},
			{schema.FilterResultQuality, func(q *schema.MeasurementTimeseriesTVPQuery) { q.ResultQuality = nil }},
			{schema.FilterSamplingMedium, func(q *schema.MeasurementTimeseriesTVPQuery) { q.SamplingMedium = nil }},
		} {
			if len(pq.MappedValues(filterAttr(opt.name))) > 0 && !supportsFilter(p, opt.name) {
				msgs.Warn(ds.ID, fmt.Sprintf("datasource %s does not support the %s filter; ignoring it",
					ds.ID, opt.name))
				opt.clear(pq)
			}
		}

		translated := s.translator.TranslateObservationQuery(ds, pq, msgs)
		if !translated.TranslationValid() {
			s.skip(ds, "invalid_translation",
				fmt.Sprintf("query has no usable filter values for datasource %s", ds.ID), msgs)
			continue
		}

		streams = append(streams, s.observationStream(ctx, p, translated, q.ResultQuality, msgs))
	}

	results := merge(s, schema.OperationMeasurementTimeseriesTVPObservation, streams, msgs, start)
	return newResponse(results, msgs), nil
}

func (s *Synthesizer) featureStream(ctx context.Context, p provider.Provider, q *schema.MonitoringFeatureQuery) providerStream[types.MonitoringFeature] {
	ds := p.DataSource()
	return providerStream[types.MonitoringFeature]{
		ds: ds,
		seq: func() iter.Seq2[types.MonitoringFeature, error] {
			return func(yield func(types.MonitoringFeature, error) bool) {
				for raw, err := range p.ListMonitoringFeatures(ctx, q) {
					if err != nil {
						yield(types.MonitoringFeature{}, err)
						return
					}
					if !yield(s.translator.TranslateFeature(ds, raw), nil) {
						return
					}
				}
			}
		},
	}
}

func (s *Synthesizer) observationStream(ctx context.Context, p provider.Provider, q *schema.MeasurementTimeseriesTVPQuery, quality []string, msgs *schema.MessageList) providerStream[types.MeasurementTimeseriesTVPObservation] {
	ds := p.DataSource()
	return providerStream[types.MeasurementTimeseriesTVPObservation]{
		ds: ds,
		seq: func() iter.Seq2[types.MeasurementTimeseriesTVPObservation, error] {
			return func(yield func(types.MeasurementTimeseriesTVPObservation, error) bool) {
				for raw, err := range p.GetObservations(ctx, q) {
					if err != nil {
						yield(types.MeasurementTimeseriesTVPObservation{}, err)
						return
					}
					obs := s.translator.TranslateObservation(ds, raw, msgs)
					if len(quality) > 0 {
						var ok bool
						if obs, ok = filterPointsByQuality(ds, obs, quality, msgs); !ok {
							continue
						}
					}
					if !yield(obs, nil) {
						return
					}
				}
			}
		},
	}
}

// filterPointsByQuality drops points whose canonical result quality is not
// among the requested terms and recomputes the series quality summary from
// the surviving points. Points whose provider never reported a quality are
// dropped too. The second return is false when no points survive, in which
// case the series is withheld from the response.
func filterPointsByQuality(ds provider.DataSource, obs types.MeasurementTimeseriesTVPObservation, quality []string, msgs *schema.MessageList) (types.MeasurementTimeseriesTVPObservation, bool) {
	kept := make([]types.TimeValuePair, 0, len(obs.Values))
	var summary []string
	seen := make(map[string]bool)
	for _, p := range obs.Values {
		q := p.Quality.CanonicalVocab()
		if !slices.Contains(quality, q) {
			continue
		}
		kept = append(kept, p)
		if !seen[q] {
			seen[q] = true
			summary = append(summary, q)
		}
	}
	if dropped := len(obs.Values) - len(kept); dropped > 0 {
		msgs.Warn(ds.ID, fmt.Sprintf("filtered %d of %d values for feature %s by result quality",
			dropped, len(obs.Values), obs.FeatureOfInterestID))
	}
	obs.Values = kept
	obs.ResultQuality = summary
	return obs, len(kept) > 0
}

// filterAttr maps an optional observation filter name to its mapped
// attribute type.
func filterAttr(name string) vocabulary.AttributeType {
	switch name {
	case schema.FilterStatistic:
		return vocabulary.AttributeStatistic
	case schema.FilterResultQuality:
		return vocabulary.AttributeResultQuality
	case schema.FilterSamplingMedium:
		return vocabulary.AttributeSamplingMedium
	}
	return ""
}
