package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// OutlierResponse lists the flagged indices of an outlier scan
type OutlierResponse struct {
	Method  string    `json:"method"`
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"` // The flagged values, index-aligned with Indices
}

// StrengthResponse carries the trend-strength ranking score
type StrengthResponse struct {
	DataType string  `json:"data_type"`
	Strength float64 `json:"strength"`
}

// ValueForecastResponse carries a single projected value
type ValueForecastResponse struct {
	DataType  string  `json:"data_type"`
	DaysAhead int     `json:"days_ahead"`
	Method    string  `json:"method"`
	Value     float64 `json:"value"`
}
