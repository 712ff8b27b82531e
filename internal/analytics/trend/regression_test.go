package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

func TestLinearRegression_ExactFit(t *testing.T) {
	// y = 2x exactly
	points := []Point{{1, 2}, {2, 4}, {3, 6}, {4, 8}}

	result, err := LinearRegression(points)
	if err != nil {
		t.Fatalf("LinearRegression failed: %v", err)
	}

	if math.Abs(result.Slope-2) > 1e-9 {
		t.Errorf("Expected slope 2, got %f", result.Slope)
	}
	if math.Abs(result.Intercept) > 1e-9 {
		t.Errorf("Expected intercept 0, got %f", result.Intercept)
	}
	if math.Abs(result.Correlation-1) > 1e-9 {
		t.Errorf("Expected correlation 1, got %f", result.Correlation)
	}
	if math.Abs(result.RSquared-1) > 1e-9 {
		t.Errorf("Expected r-squared 1, got %f", result.RSquared)
	}
	if math.Abs(result.Predict(5)-10) > 1e-9 {
		t.Errorf("Expected predict(5)=10, got %f", result.Predict(5))
	}
}

func TestLinearRegression_InsufficientData(t *testing.T) {
	for _, points := range [][]Point{nil, {{1, 2}}} {
		_, err := LinearRegression(points)
		if !errors.Is(err, analytics.ErrInsufficientData) {
			t.Errorf("Expected ErrInsufficientData for %d points, got %v", len(points), err)
		}
	}
}

func TestLinearRegression_DegenerateX(t *testing.T) {
	points := []Point{{3, 1}, {3, 2}, {3, 3}}

	_, err := LinearRegression(points)
	if !errors.Is(err, analytics.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for identical x values, got %v", err)
	}
}

func TestLinearRegression_ConstantY(t *testing.T) {
	points := []Point{{0, 5}, {1, 5}, {2, 5}, {3, 5}}

	result, err := LinearRegression(points)
	if err != nil {
		t.Fatalf("LinearRegression failed: %v", err)
	}
	if result.Slope != 0 {
		t.Errorf("Expected slope 0 for constant y, got %f", result.Slope)
	}
	if result.Correlation != 0 {
		t.Errorf("Expected correlation 0 for constant y, got %f", result.Correlation)
	}
	if result.Predict(100) != 5 {
		t.Errorf("Expected predict to return the constant, got %f", result.Predict(100))
	}
}

func TestLinearRegression_RSquaredBounds(t *testing.T) {
	points := []Point{{0, 3}, {1, 7}, {2, 4}, {3, 9}, {4, 6}}

	result, err := LinearRegression(points)
	if err != nil {
		t.Fatalf("LinearRegression failed: %v", err)
	}
	if result.RSquared < 0 || result.RSquared > 1 {
		t.Errorf("r-squared %f outside [0,1]", result.RSquared)
	}
}

func TestCorrelation_Perfect(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{10, 20, 30, 40, 50}

	corr, err := Correlation(a, b)
	if err != nil {
		t.Fatalf("Correlation failed: %v", err)
	}
	if math.Abs(corr-1) > 1e-9 {
		t.Errorf("Expected correlation 1, got %f", corr)
	}
}

func TestCorrelation_PerfectInverse(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{50, 40, 30, 20, 10}

	corr, err := Correlation(a, b)
	if err != nil {
		t.Fatalf("Correlation failed: %v", err)
	}
	if math.Abs(corr+1) > 1e-9 {
		t.Errorf("Expected correlation -1, got %f", corr)
	}
}

func TestCorrelation_LengthMismatch(t *testing.T) {
	_, err := Correlation([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, analytics.ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}

func TestCorrelation_ConstantSeries(t *testing.T) {
	_, err := Correlation([]float64{1, 2, 3}, []float64{5, 5, 5})
	if !errors.Is(err, analytics.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for constant series, got %v", err)
	}
}

func TestCorrelation_TooShort(t *testing.T) {
	_, err := Correlation([]float64{1}, []float64{2})
	if !errors.Is(err, analytics.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}
