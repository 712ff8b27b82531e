// Package models defines the request/response DTOs for the HTTP API and the
// conversion helpers between wire payloads and engine types.
package models

import (
	"fmt"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/utils"
)

// ObservationPayload is one health observation on the wire. Time is RFC3339.
// Value accepts any JSON number; producers that emit integers are coerced.
type ObservationPayload struct {
	Time  string      `json:"time" validate:"required"`
	Value interface{} `json:"value"`
}

// AnalyzeRequest asks for a full trend analysis over pushed observations.
// StartTime/EndTime optionally clip the analyzed window.
type AnalyzeRequest struct {
	DataType     string               `json:"data_type"`
	Observations []ObservationPayload `json:"observations" validate:"required,min=2"`
	StartTime    string               `json:"start_time,omitempty"`
	EndTime      string               `json:"end_time,omitempty"`
}

// AnomalyRequest asks for anomaly detection over pushed observations.
// Sensitivity <= 0 selects the engine default.
type AnomalyRequest struct {
	DataType     string               `json:"data_type"`
	Observations []ObservationPayload `json:"observations" validate:"required,min=2"`
	Sensitivity  float64              `json:"sensitivity,omitempty"`
}

// OutlierRequest asks for outlier indices over a bare value series
type OutlierRequest struct {
	Values []float64 `json:"values" validate:"required,min=2"`
	Method string    `json:"method" validate:"required,oneof=zscore iqr"`
}

// ForecastTrendRequest asks for a multi-point forecast
type ForecastTrendRequest struct {
	DataType     string               `json:"data_type"`
	Observations []ObservationPayload `json:"observations" validate:"required,min=2"`
	DaysAhead    int                  `json:"days_ahead"`
}

// ForecastValueRequest asks for a single projected value
type ForecastValueRequest struct {
	DataType     string               `json:"data_type"`
	Observations []ObservationPayload `json:"observations" validate:"required,min=2"`
	DaysAhead    int                  `json:"days_ahead"`
	Method       string               `json:"method"` // linear_regression (default), moving_average
}

// QualityRequest asks for a data-quality assessment
type QualityRequest struct {
	DataType     string               `json:"data_type"`
	Observations []ObservationPayload `json:"observations" validate:"required,min=1"`
}

// VariabilityRequest asks for variability metrics over a bare value series
type VariabilityRequest struct {
	Values []float64 `json:"values" validate:"required,min=1"`
}

// GapsRequest asks for data-gap detection at an expected cadence
type GapsRequest struct {
	Observations []ObservationPayload `json:"observations" validate:"required"`
	Frequency    string               `json:"frequency"` // hourly, daily (default), weekly, monthly
}

// ParseSeries converts wire payloads into an engine series, rejecting
// malformed timestamps and non-numeric values with the offending index.
func ParseSeries(payloads []ObservationPayload) (analytics.Series, error) {
	series := make(analytics.Series, len(payloads))
	for i, p := range payloads {
		ts, err := time.Parse(time.RFC3339, p.Time)
		if err != nil {
			return nil, fmt.Errorf("observation %d: invalid time %q: %w", i, p.Time, err)
		}
		value, ok := utils.ToFloat64(p.Value)
		if !ok {
			return nil, fmt.Errorf("observation %d: non-numeric value %v", i, p.Value)
		}
		series[i] = analytics.Observation{Time: ts, Value: value}
	}
	return series, nil
}

// ParseWindow builds the optional analysis window from RFC3339 bounds.
// Empty strings leave the corresponding bound open; a fully empty window is
// returned as the zero range.
func ParseWindow(startStr, endStr string) (analytics.DateRange, error) {
	if startStr == "" && endStr == "" {
		return analytics.DateRange{}, nil
	}

	start := time.Time{}
	end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

	var err error
	if startStr != "" {
		if start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return analytics.DateRange{}, fmt.Errorf("invalid start_time %q: %w", startStr, err)
		}
	}
	if endStr != "" {
		if end, err = time.Parse(time.RFC3339, endStr); err != nil {
			return analytics.DateRange{}, fmt.Errorf("invalid end_time %q: %w", endStr, err)
		}
	}
	return analytics.NewDateRange(start, end)
}
