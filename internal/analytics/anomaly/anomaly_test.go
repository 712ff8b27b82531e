package anomaly

import (
	"errors"
	"testing"
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

func createTestSeries(values []float64) analytics.Series {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := make(analytics.Series, len(values))
	for i, v := range values {
		s[i] = analytics.Observation{
			Time:  base.Add(time.Duration(i) * 24 * time.Hour),
			Value: v,
		}
	}
	return s
}

func containsIndex(indices []int, want int) bool {
	for _, i := range indices {
		if i == want {
			return true
		}
	}
	return false
}

func TestDetectOutliers_ZScore(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())
	values := []float64{1, 2, 3, 100, 4, 5, -50, 6}

	indices, err := d.DetectOutliers(values, MethodZScore)
	if err != nil {
		t.Fatalf("DetectOutliers failed: %v", err)
	}

	if len(indices) != 2 {
		t.Fatalf("Expected exactly 2 outliers, got %d: %v", len(indices), indices)
	}
	if !containsIndex(indices, 3) || !containsIndex(indices, 6) {
		t.Errorf("Expected indices 3 and 6 flagged, got %v", indices)
	}
}

func TestDetectOutliers_IQR(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())
	values := []float64{1, 2, 3, 100, 4, 5, -50, 6}

	indices, err := d.DetectOutliers(values, MethodIQR)
	if err != nil {
		t.Fatalf("DetectOutliers failed: %v", err)
	}

	if len(indices) != 2 {
		t.Fatalf("Expected exactly 2 outliers, got %d: %v", len(indices), indices)
	}
	if !containsIndex(indices, 3) || !containsIndex(indices, 6) {
		t.Errorf("Expected indices 3 and 6 flagged, got %v", indices)
	}
}

func TestDetectOutliers_FlatSeries(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())
	values := []float64{5, 5, 5, 5, 5}

	for _, method := range []Method{MethodZScore, MethodIQR} {
		indices, err := d.DetectOutliers(values, method)
		if err != nil {
			t.Fatalf("%s: DetectOutliers failed: %v", method, err)
		}
		if len(indices) != 0 {
			t.Errorf("%s: expected no outliers in flat series, got %v", method, indices)
		}
	}
}

func TestDetectOutliers_UnknownMethod(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())

	_, err := d.DetectOutliers([]float64{1, 2, 3}, Method("dbscan"))
	if !errors.Is(err, analytics.ErrUnknownMethod) {
		t.Errorf("Expected ErrUnknownMethod, got %v", err)
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := ParseMethod("zscore"); err != nil || m != MethodZScore {
		t.Errorf("Expected zscore to parse, got %v %v", m, err)
	}
	if m, err := ParseMethod("iqr"); err != nil || m != MethodIQR {
		t.Errorf("Expected iqr to parse, got %v %v", m, err)
	}
	if _, err := ParseMethod("nope"); !errors.Is(err, analytics.ErrUnknownMethod) {
		t.Errorf("Expected ErrUnknownMethod, got %v", err)
	}
}

func TestDetectAnomalies_SeverityFloor(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())
	series := createTestSeries([]float64{10, 10, 10, 10, 10, 10, 90, 10, 10, 10})

	sensitivity := 2.0
	points := d.DetectAnomalies(series, sensitivity)

	if len(points) == 0 {
		t.Fatal("Expected the spike to be detected")
	}
	for _, p := range points {
		if p.DeviationScore < sensitivity {
			t.Errorf("Point %v has score %f below sensitivity %f", p.Time, p.DeviationScore, sensitivity)
		}
		if p.Severity == SeverityLow {
			t.Errorf("Point %v carries low severity, which must never be emitted", p.Time)
		}
		if p.DeviationScore < 0 {
			t.Errorf("Negative deviation score %f", p.DeviationScore)
		}
	}
}

func TestDetectAnomalies_SeverityTiers(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())

	// score just above gate -> medium; sensitivity=2, high at 3, critical at 4
	if got := d.severity(2.1, 2.0); got != SeverityMedium {
		t.Errorf("Expected medium for score 2.1, got %s", got)
	}
	if got := d.severity(3.2, 2.0); got != SeverityHigh {
		t.Errorf("Expected high for score 3.2, got %s", got)
	}
	if got := d.severity(4.5, 2.0); got != SeverityCritical {
		t.Errorf("Expected critical for score 4.5, got %s", got)
	}
}

func TestDetectAnomalies_ConstantSeries(t *testing.T) {
	d := NewDetector(analytics.DefaultPolicy())
	series := createTestSeries([]float64{70, 70, 70, 70, 70})

	if points := d.DetectAnomalies(series, 2.0); len(points) != 0 {
		t.Errorf("Expected no anomalies in constant series, got %d", len(points))
	}
}

func TestDetectAnomalies_SortsByTime(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	series := analytics.Series{
		{Time: base.Add(72 * time.Hour), Value: 10},
		{Time: base, Value: 10},
		{Time: base.Add(24 * time.Hour), Value: 90},
		{Time: base.Add(48 * time.Hour), Value: 10},
		{Time: base.Add(96 * time.Hour), Value: 10},
		{Time: base.Add(120 * time.Hour), Value: 10},
	}

	points := NewDetector(analytics.DefaultPolicy()).DetectAnomalies(series, 1.5)
	if len(points) != 1 {
		t.Fatalf("Expected exactly one anomaly, got %d", len(points))
	}
	if !points[0].Time.Equal(base.Add(24 * time.Hour)) {
		t.Errorf("Expected anomaly at the spike time, got %v", points[0].Time)
	}
}

func TestSeverity_Rank(t *testing.T) {
	if !(SeverityLow.Rank() < SeverityMedium.Rank() &&
		SeverityMedium.Rank() < SeverityHigh.Rank() &&
		SeverityHigh.Rank() < SeverityCritical.Rank()) {
		t.Error("Severity ordering broken")
	}
}

func TestQuartiles(t *testing.T) {
	q1, q3, iqr := Quartiles([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	if q1 != 2.75 || q3 != 6.25 {
		t.Errorf("Expected Q1=2.75 Q3=6.25, got %f %f", q1, q3)
	}
	if iqr != 3.5 {
		t.Errorf("Expected IQR 3.5, got %f", iqr)
	}
}
