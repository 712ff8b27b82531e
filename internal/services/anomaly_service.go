package services

import (
	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/anomaly"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/models"
)

// AnomalyService runs anomaly and outlier detection for the API
type AnomalyService struct {
	logger   *logging.Logger
	detector *anomaly.Detector
}

// NewAnomalyService creates a new AnomalyService
func NewAnomalyService(logger *logging.Logger, policy analytics.Policy) *AnomalyService {
	return &AnomalyService{
		logger:   logger,
		detector: anomaly.NewDetector(policy),
	}
}

// DetectAnomalies scores the observations and returns every point at or
// above the sensitivity gate
func (s *AnomalyService) DetectAnomalies(req *models.AnomalyRequest) ([]anomaly.Point, error) {
	series, err := models.ParseSeries(req.Observations)
	if err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}
	if len(series) < 2 {
		return nil, NewServiceError(CodeInsufficientData, "anomaly detection requires at least 2 observations")
	}

	points := s.detector.DetectAnomalies(series, req.Sensitivity)
	s.logger.Info("Anomaly detection completed",
		"data_type", req.DataType,
		"records", len(series),
		"anomalies", len(points),
	)

	if points == nil {
		points = []anomaly.Point{}
	}
	return points, nil
}

// DetectOutliers flags outlier indices in a bare value series with the
// requested method
func (s *AnomalyService) DetectOutliers(req *models.OutlierRequest) (*models.OutlierResponse, error) {
	method, err := anomaly.ParseMethod(req.Method)
	if err != nil {
		return nil, fromEngine(err)
	}

	indices, err := s.detector.DetectOutliers(req.Values, method)
	if err != nil {
		return nil, fromEngine(err)
	}

	flagged := make([]float64, len(indices))
	for i, idx := range indices {
		flagged[i] = req.Values[idx]
	}
	if indices == nil {
		indices = []int{}
	}

	return &models.OutlierResponse{
		Method:  string(method),
		Indices: indices,
		Values:  flagged,
	}, nil
}
