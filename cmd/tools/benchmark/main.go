// Benchmark tool: posts synthetic observation sets against a running
// analyzer service and reports latency percentiles per endpoint.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"time"
)

// BenchmarkConfig holds benchmark configuration
type BenchmarkConfig struct {
	BaseURL    string
	Iterations int
	DataType   string
	APIKey     string
	HTTPClient *http.Client
}

// Result represents per-endpoint benchmark results
type Result struct {
	Endpoint   string
	TotalOps   int
	SuccessOps int
	ErrorOps   int
	AvgLatency float64 // ms
	MinLatency float64 // ms
	MaxLatency float64 // ms
	P50Latency float64 // ms
	P95Latency float64 // ms
	P99Latency float64 // ms
	ErrorMsg   string  // First error message
}

type observation struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

func main() {
	config := BenchmarkConfig{}
	flag.StringVar(&config.BaseURL, "url", "http://127.0.0.1:6060", "Base URL of the analyzer API")
	flag.IntVar(&config.Iterations, "n", 50, "Requests per endpoint")
	flag.StringVar(&config.DataType, "data-type", "weight", "Data type for synthetic observations")
	flag.StringVar(&config.APIKey, "api-key", "", "API key for authentication")
	flag.Parse()

	config.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	fmt.Printf("=== Vitalyze Benchmark Tool ===\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  URL: %s\n", config.BaseURL)
	fmt.Printf("  Iterations per endpoint: %d\n", config.Iterations)
	fmt.Printf("  Data type: %s\n", config.DataType)
	fmt.Printf("\n")

	// A year of daily observations and a 1000-record batch
	yearly := syntheticDaily(365)
	large := syntheticDaily(1000)

	cases := []struct {
		endpoint string
		payload  interface{}
	}{
		{"/v1/trends/analyze", analyzePayload(config.DataType, yearly)},
		{"/v1/trends/analyze (1000 records)", analyzePayload(config.DataType, large)},
		{"/v1/trends/strength", analyzePayload(config.DataType, yearly)},
		{"/v1/anomalies/detect", analyzePayload(config.DataType, yearly)},
		{"/v1/forecast/trend", forecastPayload(config.DataType, yearly, 14)},
		{"/v1/quality/assess", analyzePayload(config.DataType, yearly)},
	}

	exitCode := 0
	for _, c := range cases {
		result := runEndpoint(config, c.endpoint, c.payload)
		displayResult(result)
		if result.SuccessOps == 0 {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// syntheticDaily builds n daily weight-like observations: slow upward drift
// with plausible day-to-day noise
func syntheticDaily(n int) []observation {
	rng := rand.New(rand.NewSource(42))
	start := time.Now().UTC().AddDate(0, 0, -n)

	obs := make([]observation, n)
	value := 72.0
	for i := 0; i < n; i++ {
		value += 0.01 + rng.NormFloat64()*0.3
		obs[i] = observation{
			Time:  start.AddDate(0, 0, i).Format(time.RFC3339),
			Value: math.Round(value*10) / 10,
		}
	}
	return obs
}

func analyzePayload(dataType string, obs []observation) map[string]interface{} {
	return map[string]interface{}{
		"data_type":    dataType,
		"observations": obs,
	}
}

func forecastPayload(dataType string, obs []observation, daysAhead int) map[string]interface{} {
	payload := analyzePayload(dataType, obs)
	payload["days_ahead"] = daysAhead
	return payload
}

func runEndpoint(config BenchmarkConfig, endpoint string, payload interface{}) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Endpoint: endpoint, ErrorMsg: err.Error()}
	}

	// The path may carry an annotation after a space
	path := endpoint
	for i := 0; i < len(path); i++ {
		if path[i] == ' ' {
			path = path[:i]
			break
		}
	}

	latencies := make([]float64, 0, config.Iterations)
	success, errors := 0, 0
	firstErr := ""

	for i := 0; i < config.Iterations; i++ {
		start := time.Now()
		err := post(config, path, body)
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0

		if err != nil {
			errors++
			if firstErr == "" {
				firstErr = err.Error()
			}
			continue
		}
		success++
		latencies = append(latencies, elapsed)
	}

	return calculateResult(endpoint, latencies, success, errors, firstErr)
}

func post(config BenchmarkConfig, path string, body []byte) error {
	req, err := http.NewRequest("POST", config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if config.APIKey != "" {
		req.Header.Set("X-API-Key", config.APIKey)
	}

	resp, err := config.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}

func calculateResult(endpoint string, latencies []float64, success, errors int, errorMsg string) Result {
	if len(latencies) == 0 {
		return Result{
			Endpoint: endpoint,
			TotalOps: success + errors,
			ErrorOps: errors,
			ErrorMsg: errorMsg,
		}
	}

	sort.Float64s(latencies)

	result := Result{
		Endpoint:   endpoint,
		TotalOps:   success + errors,
		SuccessOps: success,
		ErrorOps:   errors,
		MinLatency: latencies[0],
		MaxLatency: latencies[len(latencies)-1],
		P50Latency: percentile(latencies, 50),
		P95Latency: percentile(latencies, 95),
		P99Latency: percentile(latencies, 99),
		ErrorMsg:   errorMsg,
	}

	var sum float64
	for _, lat := range latencies {
		sum += lat
	}
	result.AvgLatency = sum / float64(len(latencies))

	return result
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(math.Ceil(float64(len(sorted)) * p / 100.0))
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

func displayResult(r Result) {
	fmt.Printf("=== %s ===\n", r.Endpoint)
	fmt.Printf("Total Requests:  %d\n", r.TotalOps)
	fmt.Printf("Success:         %d\n", r.SuccessOps)
	fmt.Printf("Errors:          %d\n", r.ErrorOps)
	if r.ErrorMsg != "" {
		fmt.Printf("First Error:     %s\n", r.ErrorMsg)
	}
	if r.SuccessOps > 0 {
		fmt.Printf("Latency (ms):    avg=%.2f min=%.2f max=%.2f\n", r.AvgLatency, r.MinLatency, r.MaxLatency)
		fmt.Printf("Percentiles:     p50=%.2f p95=%.2f p99=%.2f\n", r.P50Latency, r.P95Latency, r.P99Latency)
	}
	fmt.Printf("\n")
}
