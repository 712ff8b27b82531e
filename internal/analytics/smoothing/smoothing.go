// Package smoothing implements the moving-average family used to build
// baseline trend curves. All functions are pure: they never mutate their
// inputs and degrade to an empty result instead of erroring on inputs that
// carry no signal (empty series, over-sized windows).
package smoothing

// SimpleMovingAverage computes the arithmetic mean of each contiguous window.
// The result has len(values)-windowSize+1 elements. When the window is larger
// than the series, non-positive, or the series is empty, the result is nil:
// a "no signal" outcome, not a failure.
func SimpleMovingAverage(values []float64, windowSize int) []float64 {
	if len(values) == 0 || windowSize <= 0 || windowSize > len(values) {
		return nil
	}

	result := make([]float64, 0, len(values)-windowSize+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= windowSize {
			sum -= values[i-windowSize]
		}
		if i >= windowSize-1 {
			result = append(result, sum/float64(windowSize))
		}
	}
	return result
}

// WeightedMovingAverage computes the single weighted sum over the full series.
//
// NOTE: unlike SimpleMovingAverage and ExponentialMovingAverage this is NOT a
// sliding window: the released behavior is one combined scalar
// sum(values[i]*weights[i]) returned as a one-element slice. The asymmetry is
// preserved deliberately; changing it would be a behavior change. Weights are
// not required to sum to 1 - normalization is the caller's responsibility.
// Returns nil when lengths differ or the series is empty.
func WeightedMovingAverage(values, weights []float64) []float64 {
	if len(values) == 0 || len(values) != len(weights) {
		return nil
	}

	sum := 0.0
	for i, v := range values {
		sum += v * weights[i]
	}
	return []float64{sum}
}

// ExponentialMovingAverage computes an EMA with smoothing factor alpha:
// ema[0] = values[0]; ema[i] = alpha*values[i] + (1-alpha)*ema[i-1].
// The result always has the same length as the input. Alpha is expected in
// (0,1]; boundary behavior is the caller's responsibility, no clamping.
func ExponentialMovingAverage(values []float64, alpha float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	result := make([]float64, len(values))
	result[0] = values[0]
	for i := 1; i < len(values); i++ {
		result[i] = alpha*values[i] + (1-alpha)*result[i-1]
	}
	return result
}
