package trend

import (
	"fmt"
	"math"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/anomaly"
	"github.com/vitalyze/vitalyze/internal/analytics/smoothing"
	"github.com/vitalyze/vitalyze/internal/logging"
)

// TrendPoint pairs a raw observation with its smoothed value. One per input
// observation; the smoothed curve is length-preserving (EMA), window-shrinking
// averages are internal steps only.
type TrendPoint struct {
	Time     time.Time `json:"time"`
	Raw      float64   `json:"raw"`
	Smoothed float64   `json:"smoothed"`
}

// TrendSummary aggregates the analyzed window
type TrendSummary struct {
	TotalDataPoints   int     `json:"total_data_points"`
	Average           float64 `json:"average"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
	StandardDeviation float64 `json:"standard_deviation"`
	PercentChange     float64 `json:"percent_change"`
}

// TrendAnalysis is the immutable result of a full trend analysis. It is
// created once, never mutated, and is the sole input the forecaster consumes.
type TrendAnalysis struct {
	DataType    analytics.DataType  `json:"data_type"`
	Window      analytics.DateRange `json:"window"`
	Points      []TrendPoint        `json:"points"`
	Direction   Direction           `json:"direction"`
	Slope       float64             `json:"slope"`
	Correlation float64             `json:"correlation"`
	Anomalies   []anomaly.Point     `json:"anomalies,omitempty"`
	Summary     TrendSummary        `json:"summary"`
	Confidence  float64             `json:"confidence"`
}

// Analyzer runs full trend analyses with a fixed policy. The logger is an
// optional observability collaborator and never influences results.
type Analyzer struct {
	policy   analytics.Policy
	detector *anomaly.Detector
	logger   *logging.Logger
}

// NewAnalyzer creates an analyzer. A nil logger disables logging.
func NewAnalyzer(policy analytics.Policy, logger *logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Analyzer{
		policy:   policy,
		detector: anomaly.NewDetector(policy),
		logger:   logger,
	}
}

// Policy returns the policy the analyzer was built with
func (a *Analyzer) Policy() analytics.Policy {
	return a.policy
}

// AnalyzeTrends is the top-level analysis entry. It sorts a copy of the
// observations ascending by time, clips to the window when one is given,
// smooths the series, classifies the direction, fits a regression, detects
// anomalies at the policy sensitivity and packages everything into an
// immutable TrendAnalysis. Fewer than 2 observations after clipping is an
// InsufficientData failure, never a degraded zero result.
func (a *Analyzer) AnalyzeTrends(dataType analytics.DataType, observations analytics.Series, window analytics.DateRange) (*TrendAnalysis, error) {
	start := time.Now()

	sorted := observations.SortedByTime()
	if !window.IsZero() {
		sorted = sorted.Clip(window)
	}
	if sorted.Len() < 2 {
		return nil, fmt.Errorf("analyze trends: have %d observations: %w", sorted.Len(), analytics.ErrInsufficientData)
	}

	values := sorted.Values()
	smoothed := smoothing.ExponentialMovingAverage(values, a.policy.SmoothingAlpha)

	points := make([]TrendPoint, len(sorted))
	for i, o := range sorted {
		points[i] = TrendPoint{Time: o.Time, Raw: o.Value, Smoothed: smoothed[i]}
	}

	regPoints := make([]Point, len(values))
	for i, v := range values {
		regPoints[i] = Point{X: float64(i), Y: v}
	}
	reg, err := LinearRegression(regPoints)
	if err != nil {
		return nil, fmt.Errorf("analyze trends: %w", err)
	}

	if window.IsZero() {
		window = analytics.DateRange{Start: sorted[0].Time, End: sorted[sorted.Len()-1].Time}
	}

	result := &TrendAnalysis{
		DataType:    dataType,
		Window:      window,
		Points:      points,
		Direction:   Classify(values, a.policy.SlopeThreshold, a.policy.VolatilityThreshold),
		Slope:       reg.Slope,
		Correlation: reg.Correlation,
		Anomalies:   a.detector.DetectAnomalies(sorted, a.policy.AnomalySensitivity),
		Summary:     summarize(values),
		Confidence:  a.confidence(reg.RSquared, len(values)),
	}

	a.logger.Debug("Trend analysis completed",
		"data_type", string(dataType),
		"points", len(points),
		"direction", string(result.Direction),
		"anomalies", len(result.Anomalies),
		"duration", time.Since(start),
	)

	return result, nil
}

// confidence blends fit quality and sample size into (0,1]. More points and
// a tighter fit raise it; the policy floor keeps it strictly positive for
// any valid input.
func (a *Analyzer) confidence(rSquared float64, count int) float64 {
	sizeFactor := float64(count) / float64(a.policy.ConfidenceFullSampleSize)
	if sizeFactor > 1 {
		sizeFactor = 1
	}

	c := a.policy.ConfidenceFitWeight*rSquared + a.policy.ConfidenceSizeWeight*sizeFactor
	if c < a.policy.MinConfidence {
		c = a.policy.MinConfidence
	}
	if c > 1 {
		c = 1
	}
	return c
}

// summarize builds the window aggregate
func summarize(values []float64) TrendSummary {
	min, max := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	first, last := values[0], values[len(values)-1]
	percentChange := 0.0
	if first != 0 {
		percentChange = (last - first) / math.Abs(first) * 100
	}

	return TrendSummary{
		TotalDataPoints:   len(values),
		Average:           mean,
		Min:               min,
		Max:               max,
		StandardDeviation: math.Sqrt(sumSq / float64(len(values))),
		PercentChange:     percentChange,
	}
}
