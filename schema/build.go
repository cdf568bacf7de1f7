package schema

import (
	"fmt"
	"time"

	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// BuildMonitoringFeatureQuery constructs a MonitoringFeatureQuery from a
// loosely-typed parameter map (e.g. decoded HTTP query parameters). Filter
// names the operation does not recognize are rejected with a fatal error, not
// silently dropped. Scalar strings are promoted to single-element lists where
// the filter takes a list. The result has been through Validate.
func BuildMonitoringFeatureQuery(params map[string]any) (*MonitoringFeatureQuery, error) {
	q := &MonitoringFeatureQuery{}
	for name, value := range params {
		var err error
		switch name {
		case FilterDatasource:
			q.Datasource, err = stringList(name, value)
		case FilterID:
			q.ID, err = singleString(name, value)
		case FilterFeatureType:
			var s string
			if s, err = singleString(name, value); err == nil {
				q.FeatureType = vocabulary.FeatureType(s)
			}
		case FilterMonitoringFeature:
			q.MonitoringFeature, err = stringList(name, value)
		case FilterParentFeature:
			q.ParentFeature, err = stringList(name, value)
		default:
			err = errors.WrapFatal(
				fmt.Errorf("%w: %q is not recognized by %s", errors.ErrUnknownFilter, name, OperationMonitoringFeatures),
				"MonitoringFeatureQuery", "Build", "filter name check")
		}
		if err != nil {
			return nil, err
		}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// BuildMeasurementTimeseriesTVPQuery constructs a
// MeasurementTimeseriesTVPQuery from a loosely-typed parameter map with the
// same rejection semantics as BuildMonitoringFeatureQuery. Dates accept
// time.Time values or "YYYY-MM-DD" strings.
func BuildMeasurementTimeseriesTVPQuery(params map[string]any) (*MeasurementTimeseriesTVPQuery, error) {
	q := &MeasurementTimeseriesTVPQuery{}
	for name, value := range params {
		var err error
		switch name {
		case FilterDatasource:
			q.Datasource, err = stringList(name, value)
		case FilterMonitoringFeature:
			q.MonitoringFeature, err = stringList(name, value)
		case FilterObservedProperty:
			q.ObservedProperty, err = stringList(name, value)
		case FilterStartDate:
			q.StartDate, err = dateValue(name, value)
		case FilterEndDate:
			q.EndDate, err = dateValue(name, value)
		case FilterAggregationDuration:
			q.AggregationDuration, err = stringList(name, value)
		case FilterStatistic:
			q.Statistic, err = stringList(name, value)
		case FilterResultQuality:
			q.ResultQuality, err = stringList(name, value)
		case FilterSamplingMedium:
			q.SamplingMedium, err = stringList(name, value)
		default:
			err = errors.WrapFatal(
				fmt.Errorf("%w: %q is not recognized by %s",
					errors.ErrUnknownFilter, name, OperationMeasurementTimeseriesTVPObservation),
				"MeasurementTimeseriesTVPQuery", "Build", "filter name check")
		}
		if err != nil {
			return nil, err
		}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

func singleString(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", errors.WrapFatal(
			fmt.Errorf("%w: %s expects a string, got %T", errors.ErrInvalidFilter, name, value),
			"Query", "Build", "filter type check")
	}
	return s, nil
}

func stringList(name string, value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.WrapFatal(
					fmt.Errorf("%w: %s expects strings, got %T", errors.ErrInvalidFilter, name, item),
					"Query", "Build", "filter type check")
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, errors.WrapFatal(
		fmt.Errorf("%w: %s expects a string or list of strings, got %T", errors.ErrInvalidFilter, name, value),
		"Query", "Build", "filter type check")
}

func dateValue(name string, value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(DateFormat, v)
		if err != nil {
			return time.Time{}, errors.WrapFatal(
				fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", errors.ErrInvalidFilter, name, v),
				"Query", "Build", "date format check")
		}
		return t, nil
	}
	return time.Time{}, errors.WrapFatal(
		fmt.Errorf("%w: %s expects a date, got %T", errors.ErrInvalidFilter, name, value),
		"Query", "Build", "filter type check")
}
