// Package stream runs the queue-fed analysis worker: observation batches in,
// analysis reports out.
package stream

import (
	"github.com/vitalyze/vitalyze/internal/analytics/forecast"
	"github.com/vitalyze/vitalyze/internal/analytics/quality"
	"github.com/vitalyze/vitalyze/internal/analytics/trend"
	"github.com/vitalyze/vitalyze/internal/models"
)

// ObservationBatch is the inbound message envelope. BatchID is assigned by
// the worker when the producer omits it. ForecastDays > 0 requests a trend
// prediction alongside the analysis.
type ObservationBatch struct {
	BatchID      string                      `json:"batch_id,omitempty"`
	DataType     string                      `json:"data_type"`
	Observations []models.ObservationPayload `json:"observations"`
	StartTime    string                      `json:"start_time,omitempty"`
	EndTime      string                      `json:"end_time,omitempty"`
	ForecastDays int                         `json:"forecast_days,omitempty"`
}

// AnalysisReport is the outbound message envelope. Failed batches carry an
// Error and empty analysis fields, so producers always get a terminal
// answer per batch.
type AnalysisReport struct {
	BatchID    string                    `json:"batch_id"`
	DataType   string                    `json:"data_type"`
	Analysis   *trend.TrendAnalysis      `json:"analysis,omitempty"`
	Quality    *quality.Assessment       `json:"quality,omitempty"`
	Prediction *forecast.TrendPrediction `json:"prediction,omitempty"`
	Error      string                    `json:"error,omitempty"`
}
