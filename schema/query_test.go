package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

func TestMonitoringFeatureQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   MonitoringFeatureQuery
		wantErr error
	}{
		{
			name:  "empty query is valid",
			query: MonitoringFeatureQuery{},
		},
		{
			name:  "known feature type",
			query: MonitoringFeatureQuery{FeatureType: vocabulary.FeatureTypePoint},
		},
		{
			name:    "unknown feature type",
			query:   MonitoringFeatureQuery{FeatureType: "GALAXY"},
			wantErr: errors.ErrInvalidFilter,
		},
		{
			name:    "empty identifier in list",
			query:   MonitoringFeatureQuery{MonitoringFeature: []string{"USGS-1", ""}},
			wantErr: errors.ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errors.IsFatal(err))
		})
	}
}

func TestTVPQueryValidateRequiredFields(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   MeasurementTimeseriesTVPQuery
		wantErr error
	}{
		{
			name: "minimal valid query",
			query: MeasurementTimeseriesTVPQuery{
				MonitoringFeature: []string{"A-1"},
				ObservedProperty:  []string{"RDC"},
				StartDate:         start,
			},
		},
		{
			name: "missing monitoring feature",
			query: MeasurementTimeseriesTVPQuery{
				ObservedProperty: []string{"RDC"},
				StartDate:        start,
			},
			wantErr: errors.ErrMissingFilter,
		},
		{
			name: "missing observed property",
			query: MeasurementTimeseriesTVPQuery{
				MonitoringFeature: []string{"A-1"},
				StartDate:         start,
			},
			wantErr: errors.ErrMissingFilter,
		},
		{
			name: "missing start date",
			query: MeasurementTimeseriesTVPQuery{
				MonitoringFeature: []string{"A-1"},
				ObservedProperty:  []string{"RDC"},
			},
			wantErr: errors.ErrMissingFilter,
		},
		{
			name: "end date before start date",
			query: MeasurementTimeseriesTVPQuery{
				MonitoringFeature: []string{"A-1"},
				ObservedProperty:  []string{"RDC"},
				StartDate:         start,
				EndDate:           start.AddDate(0, 0, -1),
			},
			wantErr: errors.ErrInvalidFilter,
		},
		{
			name: "invalid statistic term",
			query: MeasurementTimeseriesTVPQuery{
				MonitoringFeature: []string{"A-1"},
				ObservedProperty:  []string{"RDC"},
				StartDate:         start,
				Statistic:         []string{"MEDIAN"},
			},
			wantErr: errors.ErrInvalidFilter,
		},
		{
			name: "invalid result quality term",
			query: MeasurementTimeseriesTVPQuery{
				MonitoringFeature: []string{"A-1"},
				ObservedProperty:  []string{"RDC"},
				StartDate:         start,
				ResultQuality:     []string{"PRISTINE"},
			},
			wantErr: errors.ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTVPQueryValidateDefaults(t *testing.T) {
	q := MeasurementTimeseriesTVPQuery{
		MonitoringFeature: []string{"A-1"},
		ObservedProperty:  []string{"RDC"},
		StartDate:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, q.Validate())

	assert.Equal(t, []string{vocabulary.AggregationDay}, q.AggregationDuration)
	assert.False(t, q.EndDate.IsZero(), "end date defaults to now")
	assert.False(t, q.EndDate.Before(q.StartDate))
}

func TestTVPQueryAggregationCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"unset defaults to DAY", nil, []string{vocabulary.AggregationDay}},
		{"NONE opts out", []string{vocabulary.AggregationNone}, []string{vocabulary.AggregationNone}},
		{"MONTH coerces to DAY", []string{vocabulary.AggregationMonth}, []string{vocabulary.AggregationDay}},
		{"HOUR coerces to DAY", []string{vocabulary.AggregationHour}, []string{vocabulary.AggregationDay}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := MeasurementTimeseriesTVPQuery{
				MonitoringFeature:   []string{"A-1"},
				ObservedProperty:    []string{"RDC"},
				StartDate:           time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				AggregationDuration: tt.in,
			}
			require.NoError(t, q.Validate())
			assert.Equal(t, tt.want, q.AggregationDuration)
		})
	}
}

func TestTVPQueryMappedValueRoundTrip(t *testing.T) {
	q := &MeasurementTimeseriesTVPQuery{
		ObservedProperty: []string{"RDC"},
		Statistic:        []string{"MEAN"},
	}

	assert.Equal(t, []string{"RDC"}, q.MappedValues(vocabulary.AttributeObservedProperty))
	assert.Equal(t, []string{"MEAN"}, q.MappedValues(vocabulary.AttributeStatistic))

	q.SetMappedValues(vocabulary.AttributeObservedProperty, []string{"00060"})
	assert.Equal(t, []string{"00060"}, q.ObservedProperty)

	// observed property ordered first for compound mapping translation
	assert.Equal(t, vocabulary.AttributeObservedProperty, q.MappedFields()[0])
}

func TestQueryCloneIsDeep(t *testing.T) {
	q := &MeasurementTimeseriesTVPQuery{
		MonitoringFeature: []string{"A-1"},
		ObservedProperty:  []string{"RDC"},
	}
	clone := q.Clone()
	clone.ObservedProperty[0] = "WT"
	clone.MonitoringFeature = append(clone.MonitoringFeature, "A-2")

	assert.Equal(t, []string{"RDC"}, q.ObservedProperty)
	assert.Len(t, q.MonitoringFeature, 1)
}

func TestTranslationStateTracking(t *testing.T) {
	q := &MonitoringFeatureQuery{}
	assert.False(t, q.Translated())
	assert.False(t, q.TranslationValid())

	q.MarkTranslated(false)
	assert.True(t, q.Translated())
	assert.False(t, q.TranslationValid())

	q.MarkTranslated(true)
	assert.True(t, q.TranslationValid())
}

func TestBuildMonitoringFeatureQuery(t *testing.T) {
	q, err := BuildMonitoringFeatureQuery(map[string]any{
		"feature_type":       "point",
		"datasource":         "USGS",
		"monitoring_feature": []string{"USGS-1", "USGS-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, vocabulary.FeatureTypePoint, q.FeatureType)
	assert.Equal(t, []string{"USGS"}, q.Datasource)
	assert.Len(t, q.MonitoringFeature, 2)
}

func TestBuildRejectsUnrecognizedFilter(t *testing.T) {
	_, err := BuildMonitoringFeatureQuery(map[string]any{
		"depth": "10m",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFilter)
	assert.True(t, errors.IsFatal(err))

	// observation-only filters are not valid for monitoring features
	_, err = BuildMonitoringFeatureQuery(map[string]any{
		"observed_property": "RDC",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFilter)
}

func TestBuildTVPQueryParsesDates(t *testing.T) {
	q, err := BuildMeasurementTimeseriesTVPQuery(map[string]any{
		"monitoring_feature": "USGS-09110000",
		"observed_property":  []any{"RDC"},
		"start_date":         "2022-06-01",
		"end_date":           "2022-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), q.StartDate)
	assert.Equal(t, time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC), q.EndDate)

	_, err = BuildMeasurementTimeseriesTVPQuery(map[string]any{
		"monitoring_feature": "USGS-09110000",
		"observed_property":  "RDC",
		"start_date":         "06/01/2022",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFilter)
}

func TestBuildRejectsWrongTypes(t *testing.T) {
	_, err := BuildMonitoringFeatureQuery(map[string]any{
		"monitoring_feature": 42,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFilter)

	_, err = BuildMonitoringFeatureQuery(map[string]any{
		"monitoring_feature": []any{"USGS-1", 7},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFilter)
}
