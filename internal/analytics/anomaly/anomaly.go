// Package anomaly implements outlier detection over raw value series and
// anomaly scoring over observation sets. Detection methods form a closed set
// dispatched via a switch; each method is a stateless pure function.
package anomaly

import (
	"fmt"
	"math"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

// Method selects the outlier detection strategy
type Method string

const (
	MethodZScore Method = "zscore"
	MethodIQR    Method = "iqr"
)

// ParseMethod validates a method string
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodZScore, MethodIQR:
		return Method(s), nil
	default:
		return "", fmt.Errorf("outlier method %q: %w", s, analytics.ErrUnknownMethod)
	}
}

// Severity is the derived ordinal of how far an anomaly exceeds the
// sensitivity gate. Low is reserved for scores below the gate, so no point
// emitted by DetectAnomalies ever carries it.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities: low < medium < high < critical
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// Point is a single detected anomaly. DeviationScore is always >= 0.
type Point struct {
	Time           time.Time `json:"time"`
	Value          float64   `json:"value"`
	DeviationScore float64   `json:"deviation_score"`
	Severity       Severity  `json:"severity"`
}

// Detector runs outlier and anomaly detection with a fixed policy
type Detector struct {
	policy analytics.Policy
}

// NewDetector creates a detector with the given policy
func NewDetector(policy analytics.Policy) *Detector {
	return &Detector{policy: policy}
}

// DetectOutliers returns the indices of values flagged by the chosen method.
// The input is never mutated.
func (d *Detector) DetectOutliers(values []float64, method Method) ([]int, error) {
	switch method {
	case MethodZScore:
		return zScoreOutliers(values, d.policy.ZScoreMultiplier), nil
	case MethodIQR:
		return iqrOutliers(values, d.policy.IQRMultiplier), nil
	default:
		return nil, fmt.Errorf("outlier method %q: %w", method, analytics.ErrUnknownMethod)
	}
}

// DetectAnomalies scores every observation against the series mean and emits
// a Point for each whose deviation score reaches the sensitivity gate.
// A sensitivity <= 0 falls back to the policy default. A constant or empty
// series produces no anomalies.
func (d *Detector) DetectAnomalies(observations analytics.Series, sensitivity float64) []Point {
	if sensitivity <= 0 {
		sensitivity = d.policy.AnomalySensitivity
	}
	if observations.Len() < 2 {
		return nil
	}

	sorted := observations.SortedByTime()
	mean, stdDev := meanStdDev(sorted.Values())
	if stdDev == 0 {
		return nil
	}

	var points []Point
	for _, o := range sorted {
		score := math.Abs(o.Value-mean) / stdDev
		if score < sensitivity {
			continue
		}
		points = append(points, Point{
			Time:           o.Time,
			Value:          o.Value,
			DeviationScore: score,
			Severity:       d.severity(score, sensitivity),
		})
	}
	return points
}

// severity tiers a gated score into medium/high/critical
func (d *Detector) severity(score, sensitivity float64) Severity {
	switch {
	case score >= sensitivity*d.policy.SeverityCriticalFactor:
		return SeverityCritical
	case score >= sensitivity*d.policy.SeverityHighFactor:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// meanStdDev returns the mean and population standard deviation
func meanStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return mean, math.Sqrt(sumSq/float64(len(values)))
}
