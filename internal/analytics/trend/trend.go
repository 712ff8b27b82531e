// Package trend implements trend direction classification, ordinary least
// squares regression and the top-level trend analysis over a health series.
package trend

import (
	"math"
)

// Direction is the categorical classification of a value series
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
	DirectionVolatile   Direction = "volatile"
)

// Classify assigns a direction to a value series. The checks run in a fixed
// precedence order: volatility first, then slope magnitude, then slope sign.
// A series with large swings but near-zero net slope must come out volatile,
// not stable, which is why volatility wins.
func Classify(values []float64, slopeThreshold, volatilityThreshold float64) Direction {
	if len(values) < 2 {
		return DirectionStable
	}

	if volatility(values) > volatilityThreshold {
		return DirectionVolatile
	}

	slope := normalizedSlope(values)
	if math.Abs(slope) < slopeThreshold {
		return DirectionStable
	}
	if slope > 0 {
		return DirectionIncreasing
	}
	return DirectionDecreasing
}

// normalizedSlope is the end-to-start relative change spread over the index
// count, so the threshold is scale-free.
func normalizedSlope(values []float64) float64 {
	first := values[0]
	last := values[len(values)-1]

	denom := math.Abs(first)
	if denom == 0 {
		denom = 1
	}
	return (last - first) / denom / float64(len(values)-1)
}

// volatility is the mean absolute change between consecutive points relative
// to the mean magnitude. Unlike a whole-series coefficient of variation this
// stays low on steep but smooth ramps, so they classify by slope rather than
// as volatile. With a zero mean the raw step size is used.
func volatility(values []float64) float64 {
	sum := 0.0
	stepSum := 0.0
	for i, v := range values {
		sum += v
		if i > 0 {
			stepSum += math.Abs(v - values[i-1])
		}
	}
	mean := sum / float64(len(values))
	avgStep := stepSum / float64(len(values)-1)

	if mean == 0 {
		return avgStep
	}
	return avgStep / math.Abs(mean)
}
