package services

import (
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/forecast"
	"github.com/vitalyze/vitalyze/internal/analytics/trend"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/models"
)

// AnalysisService runs trend analyses and strength rankings for the API
type AnalysisService struct {
	logger     *logging.Logger
	analyzer   *trend.Analyzer
	forecaster *forecast.Forecaster
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(logger *logging.Logger, policy analytics.Policy) *AnalysisService {
	return &AnalysisService{
		logger:     logger,
		analyzer:   trend.NewAnalyzer(policy, logger),
		forecaster: forecast.NewForecaster(policy, logger),
	}
}

// Analyze converts the request, runs the full trend analysis and returns
// the immutable result
func (s *AnalysisService) Analyze(req *models.AnalyzeRequest) (*trend.TrendAnalysis, error) {
	start := time.Now()

	series, err := models.ParseSeries(req.Observations)
	if err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}
	window, err := models.ParseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fromEngine(err)
	}

	analysis, err := s.analyzer.AnalyzeTrends(analytics.DataType(req.DataType), series, window)
	if err != nil {
		return nil, fromEngine(err)
	}

	s.logger.Info("Analysis completed",
		"data_type", req.DataType,
		"records", len(series),
		"direction", string(analysis.Direction),
		"duration", time.Since(start),
	)
	return analysis, nil
}

// Strength analyzes the observations and scores how decisively the metric
// is trending
func (s *AnalysisService) Strength(req *models.AnalyzeRequest) (*models.StrengthResponse, error) {
	analysis, err := s.Analyze(req)
	if err != nil {
		return nil, err
	}

	return &models.StrengthResponse{
		DataType: req.DataType,
		Strength: s.forecaster.TrendStrength(analysis),
	}, nil
}
