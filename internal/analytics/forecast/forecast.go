// Package forecast projects future values from a frozen TrendAnalysis.
// Prediction methods form a closed set dispatched via a switch; each is a
// stateless pure function of its inputs.
package forecast

import (
	"fmt"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

// PredictionMethod selects the underlying forecast model
type PredictionMethod string

const (
	MethodLinearRegression PredictionMethod = "linear_regression"
	MethodMovingAverage    PredictionMethod = "moving_average"
)

// ParseMethod validates a prediction method string
func ParseMethod(s string) (PredictionMethod, error) {
	switch PredictionMethod(s) {
	case MethodLinearRegression, MethodMovingAverage:
		return PredictionMethod(s), nil
	default:
		return "", fmt.Errorf("prediction method %q: %w", s, analytics.ErrUnknownMethod)
	}
}

// PredictedPoint is a single projected future observation
type PredictedPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// TrendPrediction is the immutable forecast result. Points are strictly
// increasing in time; Confidence never exceeds the confidence of the source
// analysis; ValidUntil is strictly after the moment of prediction.
type TrendPrediction struct {
	DataType    analytics.DataType `json:"data_type"`
	Points      []PredictedPoint   `json:"points"`
	Confidence  float64            `json:"confidence"`
	Methodology PredictionMethod   `json:"methodology"`
	ValidUntil  time.Time          `json:"valid_until"`
}
