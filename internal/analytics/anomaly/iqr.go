package anomaly

import "sort"

// iqrOutliers flags the indices outside [Q1 - k*IQR, Q3 + k*IQR], the Tukey
// fence with multiplier k. Quartiles use linear interpolation.
func iqrOutliers(values []float64, multiplier float64) []int {
	if len(values) < 2 {
		return nil
	}

	q1, q3, iqr := Quartiles(values)
	lower := q1 - multiplier*iqr
	upper := q3 + multiplier*iqr

	var indices []int
	for i, v := range values {
		if v < lower || v > upper {
			indices = append(indices, i)
		}
	}
	return indices
}

// Quartiles returns Q1, Q3 and the interquartile range of values.
// The input is copied before sorting and never mutated.
func Quartiles(values []float64) (q1, q3, iqr float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 = percentile(sorted, 25)
	q3 = percentile(sorted, 75)
	return q1, q3, q3 - q1
}

// percentile calculates the p-th percentile of sorted data with linear
// interpolation between ranks. p is in [0, 100].
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
