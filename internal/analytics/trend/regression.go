package trend

import (
	"fmt"
	"math"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

// Point is an (x, y) pair for regression fitting
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LinearRegressionResult is the immutable fit of y = Slope*x + Intercept.
// RSquared is Correlation squared, always in [0,1].
type LinearRegressionResult struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	Correlation float64 `json:"correlation"`
	RSquared    float64 `json:"r_squared"`
}

// Predict evaluates the fitted line at x
func (r LinearRegressionResult) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// LinearRegression fits an ordinary least squares line over points.
// Fewer than 2 points, or fewer than 2 distinct x values, is an error.
// A constant-y series fits slope 0 with correlation 0 so identical-value
// series still flow through the top-level analysis.
func LinearRegression(points []Point) (LinearRegressionResult, error) {
	n := float64(len(points))
	if len(points) < 2 {
		return LinearRegressionResult{}, fmt.Errorf("linear regression: %w", analytics.ErrInsufficientData)
	}

	sumX, sumY, sumXY, sumX2, sumY2 := 0.0, 0.0, 0.0, 0.0, 0.0
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
		sumY2 += p.Y * p.Y
	}

	sxx := n*sumX2 - sumX*sumX
	if sxx == 0 {
		return LinearRegressionResult{}, fmt.Errorf("linear regression: degenerate x values: %w", analytics.ErrInsufficientData)
	}

	slope := (n*sumXY - sumX*sumY) / sxx
	intercept := (sumY - slope*sumX) / n

	correlation := 0.0
	syy := n*sumY2 - sumY*sumY
	if syy > 0 {
		correlation = (n*sumXY - sumX*sumY) / math.Sqrt(sxx*syy)
	}

	return LinearRegressionResult{
		Slope:       slope,
		Intercept:   intercept,
		Correlation: correlation,
		RSquared:    correlation * correlation,
	}, nil
}

// Correlation computes the Pearson product-moment correlation of two series.
// The series must have equal length, at least 2 points, and neither may be
// constant. The result is in [-1, 1].
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("correlation: %w", analytics.ErrLengthMismatch)
	}
	if len(a) < 2 {
		return 0, fmt.Errorf("correlation: %w", analytics.ErrInsufficientData)
	}

	n := float64(len(a))
	sumA, sumB, sumAB, sumA2, sumB2 := 0.0, 0.0, 0.0, 0.0, 0.0
	for i := range a {
		sumA += a[i]
		sumB += b[i]
		sumAB += a[i] * b[i]
		sumA2 += a[i] * a[i]
		sumB2 += b[i] * b[i]
	}

	saa := n*sumA2 - sumA*sumA
	sbb := n*sumB2 - sumB*sumB
	if saa == 0 || sbb == 0 {
		return 0, fmt.Errorf("correlation: constant series: %w", analytics.ErrInsufficientData)
	}

	corr := (n*sumAB - sumA*sumB) / math.Sqrt(saa*sbb)

	// Clamp floating point spill outside [-1, 1]
	if corr > 1 {
		corr = 1
	} else if corr < -1 {
		corr = -1
	}
	return corr, nil
}
