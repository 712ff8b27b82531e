package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/middleware"
	"github.com/vitalyze/vitalyze/internal/models"
)

func newTestApp() *fiber.App {
	logger := logging.NewNop()
	h := New(logger, analytics.DefaultPolicy())

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
	})
	app.Get("/health", h.Health)
	app.Post("/v1/trends/analyze", h.AnalyzeTrends)
	app.Post("/v1/trends/strength", h.TrendStrength)
	app.Post("/v1/anomalies/detect", h.DetectAnomalies)
	app.Post("/v1/outliers", h.DetectOutliers)
	app.Post("/v1/forecast/trend", h.ForecastTrend)
	app.Post("/v1/forecast/value", h.ForecastValue)
	app.Post("/v1/quality/assess", h.AssessQuality)
	app.Post("/v1/quality/variability", h.Variability)
	app.Post("/v1/quality/gaps", h.DataGaps)
	app.Use(h.NotFound)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, []byte) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return resp.StatusCode, respBody
}

func rampObservations() []models.ObservationPayload {
	return []models.ObservationPayload{
		{Time: "2025-06-01T08:00:00Z", Value: 70},
		{Time: "2025-06-02T08:00:00Z", Value: 71},
		{Time: "2025-06-03T08:00:00Z", Value: 72},
		{Time: "2025-06-04T08:00:00Z", Value: 73},
		{Time: "2025-06-05T08:00:00Z", Value: 74},
		{Time: "2025-06-06T08:00:00Z", Value: 75},
		{Time: "2025-06-07T08:00:00Z", Value: 76},
		{Time: "2025-06-08T08:00:00Z", Value: 77},
	}
}

func TestHandler_Health(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status %d, got %d", fiber.StatusOK, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var healthResp models.HealthResponse
	if err := json.Unmarshal(body, &healthResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if healthResp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got '%s'", healthResp.Status)
	}
}

func TestHandler_NotFound(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/nope", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if errResp.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected code 'NOT_FOUND', got %q", errResp.Error.Code)
	}
	if errResp.Error.Path != "/nope" {
		t.Errorf("Expected path '/nope', got %q", errResp.Error.Path)
	}
}

func TestHandler_AnalyzeTrends(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/trends/analyze", models.AnalyzeRequest{
		DataType:     "weight",
		Observations: rampObservations(),
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var analysis map[string]interface{}
	if err := json.Unmarshal(body, &analysis); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if analysis["direction"] != "increasing" {
		t.Errorf("Expected direction 'increasing', got %v", analysis["direction"])
	}
}

func TestHandler_AnalyzeTrends_InsufficientData(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/trends/analyze", models.AnalyzeRequest{
		DataType: "weight",
		Observations: []models.ObservationPayload{
			{Time: "2025-06-01T08:00:00Z", Value: 70},
		},
	})
	if status != 422 {
		t.Fatalf("Expected status 422, got %d: %s", status, body)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if errResp.Error.Code != "INSUFFICIENT_DATA" {
		t.Errorf("Expected code 'INSUFFICIENT_DATA', got %q", errResp.Error.Code)
	}
}

func TestHandler_AnalyzeTrends_MalformedBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/v1/trends/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestHandler_TrendStrength(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/trends/strength", models.AnalyzeRequest{
		DataType:     "weight",
		Observations: rampObservations(),
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp models.StrengthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Strength < 0 || resp.Strength > 1 {
		t.Errorf("Expected strength in [0,1], got %f", resp.Strength)
	}
}

func TestHandler_DetectAnomalies(t *testing.T) {
	app := newTestApp()

	obs := rampObservations()
	obs[4].Value = 120 // single spike

	status, body := postJSON(t, app, "/v1/anomalies/detect", models.AnomalyRequest{
		DataType:     "weight",
		Observations: obs,
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp struct {
		Anomalies []map[string]interface{} `json:"anomalies"`
		Count     int                      `json:"count"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("Expected 1 anomaly, got %d", resp.Count)
	}
	if resp.Anomalies[0]["value"].(float64) != 120 {
		t.Errorf("Expected flagged value 120, got %v", resp.Anomalies[0]["value"])
	}
}

func TestHandler_DetectOutliers(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/outliers", models.OutlierRequest{
		Values: []float64{1, 2, 3, 100, 4, 5, -50, 6},
		Method: "zscore",
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp models.OutlierResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Indices) != 2 || resp.Indices[0] != 3 || resp.Indices[1] != 6 {
		t.Errorf("Expected indices [3 6], got %v", resp.Indices)
	}
}

func TestHandler_DetectOutliers_BadMethod(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/outliers", models.OutlierRequest{
		Values: []float64{1, 2, 3},
		Method: "isolation_forest",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %s", status, body)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if errResp.Error.Code != "INVALID_METHOD" {
		t.Errorf("Expected code 'INVALID_METHOD', got %q", errResp.Error.Code)
	}
}

func TestHandler_ForecastTrend(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/forecast/trend", models.ForecastTrendRequest{
		DataType:     "weight",
		Observations: rampObservations(),
		DaysAhead:    5,
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp struct {
		Points []map[string]interface{} `json:"points"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Points) != 5 {
		t.Errorf("Expected 5 forecast points, got %d", len(resp.Points))
	}
}

func TestHandler_ForecastValue(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/forecast/value", models.ForecastValueRequest{
		DataType:     "weight",
		Observations: rampObservations(),
		DaysAhead:    3,
		Method:       "moving_average",
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp models.ValueForecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Method != "moving_average" {
		t.Errorf("Expected method 'moving_average', got %q", resp.Method)
	}
	if resp.DaysAhead != 3 {
		t.Errorf("Expected days_ahead 3, got %d", resp.DaysAhead)
	}
}

func TestHandler_AssessQuality(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/quality/assess", models.QualityRequest{
		DataType:     "weight",
		Observations: rampObservations(),
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if _, ok := resp["overall_score"]; !ok {
		t.Error("Expected overall_score in response")
	}
}

func TestHandler_Variability(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/quality/variability", models.VariabilityRequest{
		Values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp["standard_deviation"].(float64) != 2.0 {
		t.Errorf("Expected standard_deviation 2.0, got %v", resp["standard_deviation"])
	}
}

func TestHandler_DataGaps(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/v1/quality/gaps", models.GapsRequest{
		Observations: []models.ObservationPayload{
			{Time: "2025-06-01T08:00:00Z", Value: 1},
			{Time: "2025-06-02T08:00:00Z", Value: 2},
			{Time: "2025-06-09T08:00:00Z", Value: 3},
		},
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}

	var resp struct {
		Frequency string                   `json:"frequency"`
		Gaps      []map[string]interface{} `json:"gaps"`
		Count     int                      `json:"count"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Frequency != "daily" {
		t.Errorf("Expected default frequency 'daily', got %q", resp.Frequency)
	}
	if resp.Count != 1 {
		t.Errorf("Expected 1 gap, got %d", resp.Count)
	}
}
