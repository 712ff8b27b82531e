package quality

import (
	"fmt"
	"math"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/logging"
)

// Assessment scores a record set on four [0,1] dimensions plus their
// equal-weighted overall score.
type Assessment struct {
	Completeness float64 `json:"completeness"`
	Consistency  float64 `json:"consistency"`
	Accuracy     float64 `json:"accuracy"`
	Timeliness   float64 `json:"timeliness"`
	OverallScore float64 `json:"overall_score"`
}

// Assessor scores data quality with a fixed policy. The logger is optional.
type Assessor struct {
	policy analytics.Policy
	logger *logging.Logger
}

// NewAssessor creates an assessor. A nil logger disables logging.
func NewAssessor(policy analytics.Policy, logger *logging.Logger) *Assessor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Assessor{policy: policy, logger: logger}
}

// AssessDataQuality scores a record set for the given data type. "now" is an
// explicit input so the timeliness score stays reproducible; the other three
// dimensions depend only on the records themselves.
//
//   - completeness: fraction of expected sampling slots present between the
//     earliest and latest record, at the type's cadence
//   - consistency: observed variability against the type's typical norm
//   - accuracy: fraction of records inside the type's plausibility window
//   - timeliness: recency of the newest record relative to now
func (a *Assessor) AssessDataQuality(dataType analytics.DataType, observations analytics.Series, now time.Time) (Assessment, error) {
	if observations.Len() == 0 {
		return Assessment{}, fmt.Errorf("assess data quality: %w", analytics.ErrInsufficientData)
	}

	start := time.Now()
	profile := analytics.ProfileFor(dataType)
	sorted := observations.SortedByTime()

	result := Assessment{
		Completeness: completeness(sorted, profile.Cadence),
		Consistency:  consistency(sorted, profile.TypicalCV),
		Accuracy:     accuracy(sorted, profile),
		Timeliness:   timeliness(sorted, profile.Cadence, now),
	}
	result.OverallScore = (result.Completeness + result.Consistency + result.Accuracy + result.Timeliness) / 4

	a.logger.Debug("Data quality assessed",
		"data_type", string(dataType),
		"records", sorted.Len(),
		"overall", result.OverallScore,
		"duration", time.Since(start),
	)
	return result, nil
}

// completeness compares the record count against the sampling slots the
// cadence implies for the observed span. A single record is complete by
// definition (span zero, one expected slot).
func completeness(sorted analytics.Series, cadence time.Duration) float64 {
	span := sorted[sorted.Len()-1].Time.Sub(sorted[0].Time)
	expected := float64(span/cadence) + 1
	if expected < 1 {
		expected = 1
	}
	return clamp01(float64(sorted.Len()) / expected)
}

// consistency scores observed variability against the typical coefficient of
// variation for the type: at or below the norm scores 1, k times the norm
// scores 1/k. A flat series is maximally consistent; a zero-mean series with
// spread cannot be normalized and scores 0.
func consistency(sorted analytics.Series, typicalCV float64) float64 {
	stdDev := sorted.StdDev()
	if stdDev == 0 {
		return 1
	}
	mean := sorted.Mean()
	if mean == 0 {
		return 0
	}
	cv := stdDev / math.Abs(mean)
	if cv <= typicalCV {
		return 1
	}
	return clamp01(typicalCV / cv)
}

// accuracy is the fraction of records inside the plausibility window
func accuracy(sorted analytics.Series, profile analytics.Profile) float64 {
	plausible := 0
	for _, o := range sorted {
		if profile.IsPlausible(o.Value) {
			plausible++
		}
	}
	return float64(plausible) / float64(sorted.Len())
}

// timeliness decays linearly once the newest record is older than one
// cadence interval, reaching zero at seven intervals.
func timeliness(sorted analytics.Series, cadence time.Duration, now time.Time) float64 {
	age := now.Sub(sorted[sorted.Len()-1].Time)
	if age <= cadence {
		return 1
	}
	overdue := float64(age-cadence) / float64(6*cadence)
	return clamp01(1 - overdue)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
