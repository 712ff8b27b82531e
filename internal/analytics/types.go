// Package analytics provides the shared types and numeric substrate for the
// health-metric analysis engine: observations, series helpers, data-type
// profiles, date ranges and the tunable policy constants.
package analytics

import (
	"math"
	"sort"
	"time"
)

// Observation represents a single health observation with time and value.
// This is the common type used across all analytics packages (trend, anomaly,
// quality, forecast).
type Observation struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Series represents a chronological collection of observations
type Series []Observation

// Values extracts just the values from the series
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, o := range s {
		values[i] = o.Value
	}
	return values
}

// Times extracts just the times from the series
func (s Series) Times() []time.Time {
	times := make([]time.Time, len(s))
	for i, o := range s {
		times[i] = o.Time
	}
	return times
}

// Len returns the number of observations
func (s Series) Len() int {
	return len(s)
}

// Mean calculates the mean of all values
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range s {
		sum += o.Value
	}
	return sum / float64(len(s))
}

// StdDev calculates the population standard deviation of all values
func (s Series) StdDev() float64 {
	if len(s) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, o := range s {
		diff := o.Value - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(s)))
}

// SortedByTime returns a copy of the series sorted ascending by time.
// The receiver is never mutated; callers own their slices.
func (s Series) SortedByTime() Series {
	sorted := make(Series, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})
	return sorted
}

// Clip returns the observations that fall inside the given range.
// A zero range returns a copy of the full series.
func (s Series) Clip(r DateRange) Series {
	if r.IsZero() {
		clipped := make(Series, len(s))
		copy(clipped, s)
		return clipped
	}
	clipped := make(Series, 0, len(s))
	for _, o := range s {
		if r.Contains(o.Time) {
			clipped = append(clipped, o)
		}
	}
	return clipped
}

// DateRange represents a closed time window [Start, End]
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange creates a DateRange, rejecting inverted windows
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the range (inclusive)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Duration returns the length of the range
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsZero reports whether both bounds are unset
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}
