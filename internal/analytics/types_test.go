package analytics

import (
	"errors"
	"math"
	"testing"
	"time"
)

func makeSeries(values []float64) Series {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Observation{Time: base.Add(time.Duration(i) * 24 * time.Hour), Value: v}
	}
	return s
}

func TestSeries_Mean(t *testing.T) {
	s := makeSeries([]float64{2, 4, 6, 8})
	if got := s.Mean(); got != 5 {
		t.Errorf("Expected mean 5, got %f", got)
	}

	var empty Series
	if got := empty.Mean(); got != 0 {
		t.Errorf("Expected mean 0 for empty series, got %f", got)
	}
}

func TestSeries_StdDev_Identical(t *testing.T) {
	s := makeSeries([]float64{70, 70, 70, 70, 70, 70, 70, 70, 70, 70})
	if got := s.StdDev(); got != 0 {
		t.Errorf("Expected stddev 0 for identical values, got %f", got)
	}
}

func TestSeries_StdDev_Population(t *testing.T) {
	s := makeSeries([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	// Known population stddev of this set is exactly 2
	if got := s.StdDev(); math.Abs(got-2) > 1e-9 {
		t.Errorf("Expected population stddev 2, got %f", got)
	}
}

func TestSeries_SortedByTime_DoesNotMutate(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := Series{
		{Time: base.Add(48 * time.Hour), Value: 3},
		{Time: base, Value: 1},
		{Time: base.Add(24 * time.Hour), Value: 2},
	}

	sorted := s.SortedByTime()

	if sorted[0].Value != 1 || sorted[1].Value != 2 || sorted[2].Value != 3 {
		t.Errorf("Expected sorted order 1,2,3, got %v", sorted.Values())
	}
	if s[0].Value != 3 {
		t.Error("SortedByTime mutated the caller's slice")
	}
}

func TestNewDateRange_Invalid(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewDateRange(start, end)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange, got %v", err)
	}
}

func TestDateRange_Contains(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	r, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}

	if !r.Contains(start) || !r.Contains(end) {
		t.Error("Expected range to contain its bounds")
	}
	if r.Contains(end.Add(time.Second)) {
		t.Error("Expected range to exclude times after End")
	}
}

func TestSeries_Clip(t *testing.T) {
	s := makeSeries([]float64{1, 2, 3, 4, 5})
	r, _ := NewDateRange(s[1].Time, s[3].Time)

	clipped := s.Clip(r)
	if clipped.Len() != 3 {
		t.Fatalf("Expected 3 observations after clip, got %d", clipped.Len())
	}
	if clipped[0].Value != 2 || clipped[2].Value != 4 {
		t.Errorf("Unexpected clipped values: %v", clipped.Values())
	}
}

func TestProfileFor_Unknown(t *testing.T) {
	p := ProfileFor(DataType("something_else"))
	if !p.IsPlausible(1e6) {
		t.Error("Expected permissive default profile for unknown data type")
	}
}

func TestProfileFor_Weight(t *testing.T) {
	p := ProfileFor(DataTypeWeight)
	if !p.IsPlausible(72.5) {
		t.Error("Expected 72.5 kg to be plausible weight")
	}
	if p.IsPlausible(1200) {
		t.Error("Expected 1200 kg to be implausible weight")
	}
}
