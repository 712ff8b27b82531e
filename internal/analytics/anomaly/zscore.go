package anomaly

import "math"

// zScoreOutliers flags the indices whose absolute standard score exceeds the
// multiplier. A flat series (zero standard deviation) has no outliers.
func zScoreOutliers(values []float64, multiplier float64) []int {
	if len(values) < 2 {
		return nil
	}

	mean, stdDev := meanStdDev(values)
	if stdDev == 0 {
		return nil
	}

	var indices []int
	for i, v := range values {
		if math.Abs(v-mean)/stdDev > multiplier {
			indices = append(indices, i)
		}
	}
	return indices
}
