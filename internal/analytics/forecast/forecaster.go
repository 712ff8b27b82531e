package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/trend"
	"github.com/vitalyze/vitalyze/internal/logging"
)

// Forecaster produces predictions from trend analyses with a fixed policy.
// The logger is an optional observability collaborator.
type Forecaster struct {
	policy   analytics.Policy
	analyzer *trend.Analyzer
	logger   *logging.Logger
}

// NewForecaster creates a forecaster. A nil logger disables logging.
func NewForecaster(policy analytics.Policy, logger *logging.Logger) *Forecaster {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Forecaster{
		policy:   policy,
		analyzer: trend.NewAnalyzer(policy, logger),
		logger:   logger,
	}
}

// PredictTrend projects daysAhead daily points from a frozen TrendAnalysis.
// The regression is recomputed from the analysis's own smoothed points, never
// from raw records, so a stored analysis snapshot always reproduces the same
// forecast. Confidence decays per projected day and never exceeds the source
// analysis's confidence. "now" anchors ValidUntil and must precede it.
func (f *Forecaster) PredictTrend(analysis *trend.TrendAnalysis, daysAhead int, now time.Time) (*TrendPrediction, error) {
	if analysis == nil || len(analysis.Points) < 2 {
		return nil, fmt.Errorf("predict trend: %w", analytics.ErrInsufficientData)
	}
	if daysAhead < 1 {
		daysAhead = 1
	}

	regPoints := make([]trend.Point, len(analysis.Points))
	for i, p := range analysis.Points {
		regPoints[i] = trend.Point{X: float64(i), Y: p.Smoothed}
	}
	reg, err := trend.LinearRegression(regPoints)
	if err != nil {
		return nil, fmt.Errorf("predict trend: %w", err)
	}

	lastIndex := len(analysis.Points) - 1
	lastTime := analysis.Points[lastIndex].Time

	points := make([]PredictedPoint, daysAhead)
	for day := 1; day <= daysAhead; day++ {
		points[day-1] = PredictedPoint{
			Time:  lastTime.Add(time.Duration(day) * 24 * time.Hour),
			Value: reg.Predict(float64(lastIndex + day)),
		}
	}

	confidence := analysis.Confidence * math.Pow(f.policy.ForecastDailyDecay, float64(daysAhead))

	prediction := &TrendPrediction{
		DataType:    analysis.DataType,
		Points:      points,
		Confidence:  confidence,
		Methodology: MethodLinearRegression,
		ValidUntil:  now.Add(time.Duration(f.policy.ForecastValidityDays) * 24 * time.Hour),
	}

	f.logger.Debug("Trend prediction completed",
		"data_type", string(analysis.DataType),
		"days_ahead", daysAhead,
		"confidence", confidence,
	)
	return prediction, nil
}

// PredictValue is the convenience single-value forecast: it analyzes the
// records and returns the value projected daysAhead days past the last
// observation with the chosen model.
func (f *Forecaster) PredictValue(dataType analytics.DataType, observations analytics.Series, daysAhead int, method PredictionMethod, now time.Time) (float64, error) {
	switch method {
	case MethodLinearRegression:
		analysis, err := f.analyzer.AnalyzeTrends(dataType, observations, analytics.DateRange{})
		if err != nil {
			return 0, fmt.Errorf("predict value: %w", err)
		}
		prediction, err := f.PredictTrend(analysis, daysAhead, now)
		if err != nil {
			return 0, fmt.Errorf("predict value: %w", err)
		}
		return prediction.Points[len(prediction.Points)-1].Value, nil

	case MethodMovingAverage:
		if observations.Len() < 2 {
			return 0, fmt.Errorf("predict value: %w", analytics.ErrInsufficientData)
		}
		// Trailing window mean: the flat-line forecast
		sorted := observations.SortedByTime()
		window := 7
		if sorted.Len() < window {
			window = sorted.Len()
		}
		sum := 0.0
		for _, o := range sorted[sorted.Len()-window:] {
			sum += o.Value
		}
		return sum / float64(window), nil

	default:
		return 0, fmt.Errorf("predict value: method %q: %w", method, analytics.ErrUnknownMethod)
	}
}

// TrendStrength scores how decisively a metric is trending, in [0,1]: half
// from the fit quality, half from the slope magnitude normalized by the data
// range. Callers use it to rank several tracked metrics.
func (f *Forecaster) TrendStrength(analysis *trend.TrendAnalysis) float64 {
	if analysis == nil || len(analysis.Points) < 2 {
		return 0
	}

	slopeScore := 0.0
	valueRange := analysis.Summary.Max - analysis.Summary.Min
	if valueRange > 0 {
		// Total movement the slope explains across the window, against the
		// observed spread
		explained := math.Abs(analysis.Slope) * float64(len(analysis.Points)-1)
		slopeScore = explained / valueRange
		if slopeScore > 1 {
			slopeScore = 1
		}
	}

	rSquared := analysis.Correlation * analysis.Correlation
	return 0.5*slopeScore + 0.5*rSquared
}
