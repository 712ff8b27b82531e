// Package quality implements variability metrics, data-quality scoring and
// gap detection over observation sets.
package quality

import (
	"fmt"
	"math"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/anomaly"
)

// Metrics is the immutable variability summary of a value series.
// CoefficientOfVariation is nil when the mean is zero: the ratio is
// mathematically undefined there and is surfaced as an explicit absence,
// never coerced to 0 or NaN.
type Metrics struct {
	Variance               float64  `json:"variance"`
	StandardDeviation      float64  `json:"standard_deviation"`
	CoefficientOfVariation *float64 `json:"coefficient_of_variation,omitempty"`
	Range                  float64  `json:"range"`
	InterquartileRange     float64  `json:"interquartile_range"`
}

// CalculateVariability computes population variance, standard deviation,
// coefficient of variation, range and interquartile range. All fields are
// non-negative. An empty series is an error, not a zero result.
func CalculateVariability(values []float64) (Metrics, error) {
	if len(values) == 0 {
		return Metrics{}, fmt.Errorf("calculate variability: %w", analytics.ErrInsufficientData)
	}

	sum := 0.0
	min, max := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	variance := sumSq / float64(len(values))
	stdDev := math.Sqrt(variance)

	var cv *float64
	if mean != 0 {
		v := stdDev / math.Abs(mean)
		cv = &v
	}

	_, _, iqr := anomaly.Quartiles(values)

	return Metrics{
		Variance:               variance,
		StandardDeviation:      stdDev,
		CoefficientOfVariation: cv,
		Range:                  max - min,
		InterquartileRange:     iqr,
	}, nil
}
