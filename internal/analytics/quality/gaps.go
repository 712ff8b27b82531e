package quality

import (
	"fmt"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

// Frequency is the expected sampling cadence of a record set
type Frequency string

const (
	FrequencyHourly  Frequency = "hourly"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Interval returns the nominal duration between samples
func (f Frequency) Interval() time.Duration {
	switch f {
	case FrequencyHourly:
		return time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	case FrequencyMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ParseFrequency validates a frequency string
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("frequency %q: %w", s, analytics.ErrUnknownMethod)
	}
}

// Gap is a reported hole in the sampling. Start <= End always holds.
type Gap struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IdentifyDataGaps sorts the records by time and reports a gap for every
// consecutive pair whose interval exceeds the expected cadence by the policy
// gap factor (daily cadence reports gaps longer than ~1.5 days). Fewer than
// 2 records cannot have gaps.
func (a *Assessor) IdentifyDataGaps(observations analytics.Series, frequency Frequency) []Gap {
	if observations.Len() < 2 {
		return nil
	}

	threshold := time.Duration(float64(frequency.Interval()) * a.policy.GapFactor)
	sorted := observations.SortedByTime()

	var gaps []Gap
	for i := 1; i < sorted.Len(); i++ {
		if sorted[i].Time.Sub(sorted[i-1].Time) > threshold {
			gaps = append(gaps, Gap{Start: sorted[i-1].Time, End: sorted[i].Time})
		}
	}
	return gaps
}
