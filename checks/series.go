package checks

import (
	"fmt"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

const (
	// timeToleranceDecimals is the rounding applied to timestamp
	// differences before deciding a series is regularly sampled.
	timeToleranceDecimals = 9

	// largeSeriesElems is the element count above which a regular
	// timestamps finding is ranked high severity (about 1 GB of float64).
	largeSeriesElems = 125_000_000
)

func init() {
	registry.MustRegister(registry.Rule{
		Name:       "check_regular_timestamps",
		Target:     TypeSeries,
		Importance: message.ImportanceBestPracticeViolation,
		Summary:    "Series sampled at a constant rate should use starting_time and rate instead of timestamps.",
		Predicate:  `"timestamps" in object`,
		Check:      checkRegularTimestamps,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_data_orientation",
		Target:     TypeSeries,
		Importance: message.ImportanceCritical,
		Summary:    "Time should be the first and usually longest dimension of series data.",
		Check:      checkDataOrientation,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_timestamps_match_first_dimension",
		Target:     TypeSeries,
		Importance: message.ImportanceCritical,
		Summary:    "The timestamps array must be as long as the first dimension of data.",
		Check:      checkTimestampsMatchFirstDimension,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_timestamps_ascending",
		Target:     TypeSeries,
		Importance: message.ImportanceBestPracticeViolation,
		Summary:    "Timestamps must be strictly increasing.",
		Predicate:  `"timestamps" in object`,
		Check:      checkTimestampsAscending,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_missing_unit",
		Target:     TypeSeries,
		Importance: message.ImportanceBestPracticeViolation,
		Summary:    "Every series must state the scientific unit of its data.",
		Check:      checkMissingUnit,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_resolution",
		Target:     TypeSeries,
		Importance: message.ImportanceBestPracticeViolation,
		Summary:    "Unknown resolution is written as -1.0 or NaN, never zero or negative.",
		Check:      checkResolution,
	})
}

func checkRegularTimestamps(n graph.Node) ([]message.Message, error) {
	ts, ok := attrFloats(n, "timestamps")
	if !ok || len(ts) <= 2 || !isRegular(ts, timeToleranceDecimals) {
		return nil, nil
	}
	severity := message.SeverityLow
	if len(ts) > largeSeriesElems {
		severity = message.SeverityHigh
	}
	return []message.Message{{
		Severity: severity,
		Text: fmt.Sprintf(
			"timestamps appear to have a constant sampling rate; consider specifying starting_time=%g and rate=%g instead",
			ts[0], ts[1]-ts[0]),
	}}, nil
}

func checkDataOrientation(n graph.Node) ([]message.Message, error) {
	shape, ok := attrInts(n, "shape")
	if !ok || len(shape) < 2 {
		return nil, nil
	}
	for _, dim := range shape[1:] {
		if dim > shape[0] {
			return []message.Message{message.New(
				"data may be in the wrong orientation: time should be the first dimension and is usually the longest, but another dimension is longer")}, nil
		}
	}
	return nil, nil
}

func checkTimestampsMatchFirstDimension(n graph.Node) ([]message.Message, error) {
	ts, ok := attrFloats(n, "timestamps")
	if !ok {
		return nil, nil
	}
	rows, ok := firstDimension(n)
	if !ok {
		return nil, nil
	}
	if rows != len(ts) {
		return []message.Message{message.New(fmt.Sprintf(
			"the length of the first dimension of data (%d) does not match the length of timestamps (%d)",
			rows, len(ts)))}, nil
	}
	return nil, nil
}

// firstDimension resolves the row count of a series from its declared shape,
// falling back to the length of the data array.
func firstDimension(n graph.Node) (int, bool) {
	if shape, ok := attrInts(n, "shape"); ok && len(shape) > 0 {
		return shape[0], true
	}
	if data, ok := attrFloats(n, "data"); ok {
		return len(data), true
	}
	return 0, false
}

func checkTimestampsAscending(n graph.Node) ([]message.Message, error) {
	ts, ok := attrFloats(n, "timestamps")
	if !ok || isAscending(ts) {
		return nil, nil
	}
	return []message.Message{message.New(fmt.Sprintf("%s timestamps are not ascending", n.Name()))}, nil
}

func checkMissingUnit(n graph.Node) ([]message.Message, error) {
	if unit, _ := attrString(n, "unit"); unit == "" {
		return []message.Message{message.New(
			"missing text for attribute 'unit'; please specify the scientific unit of the data")}, nil
	}
	return nil, nil
}

func checkResolution(n graph.Node) ([]message.Message, error) {
	resolution, ok := attrFloat(n, "resolution")
	if !ok || resolution == -1.0 || resolution != resolution {
		// Absent, -1.0, and NaN all mean "unknown", which is fine.
		return nil, nil
	}
	if resolution <= 0 {
		return []message.Message{message.New(fmt.Sprintf(
			"'resolution' should use -1.0 or NaN for unknown instead of %g", resolution))}, nil
	}
	return nil, nil
}
