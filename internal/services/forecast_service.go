package services

import (
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/forecast"
	"github.com/vitalyze/vitalyze/internal/analytics/trend"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/models"
)

// ForecastService produces trend and value forecasts for the API
type ForecastService struct {
	logger     *logging.Logger
	analyzer   *trend.Analyzer
	forecaster *forecast.Forecaster
}

// NewForecastService creates a new ForecastService
func NewForecastService(logger *logging.Logger, policy analytics.Policy) *ForecastService {
	return &ForecastService{
		logger:     logger,
		analyzer:   trend.NewAnalyzer(policy, logger),
		forecaster: forecast.NewForecaster(policy, logger),
	}
}

// PredictTrend analyzes the observations and projects daysAhead daily points
func (s *ForecastService) PredictTrend(req *models.ForecastTrendRequest) (*forecast.TrendPrediction, error) {
	series, err := models.ParseSeries(req.Observations)
	if err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	analysis, err := s.analyzer.AnalyzeTrends(analytics.DataType(req.DataType), series, analytics.DateRange{})
	if err != nil {
		return nil, fromEngine(err)
	}

	prediction, err := s.forecaster.PredictTrend(analysis, req.DaysAhead, time.Now())
	if err != nil {
		return nil, fromEngine(err)
	}

	s.logger.Info("Trend forecast completed",
		"data_type", req.DataType,
		"records", len(series),
		"days_ahead", len(prediction.Points),
	)
	return prediction, nil
}

// PredictValue returns the single projected value daysAhead days out
func (s *ForecastService) PredictValue(req *models.ForecastValueRequest) (*models.ValueForecastResponse, error) {
	methodStr := req.Method
	if methodStr == "" {
		methodStr = string(forecast.MethodLinearRegression)
	}
	method, err := forecast.ParseMethod(methodStr)
	if err != nil {
		return nil, fromEngine(err)
	}

	series, err := models.ParseSeries(req.Observations)
	if err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	daysAhead := req.DaysAhead
	if daysAhead < 1 {
		daysAhead = 1
	}

	value, err := s.forecaster.PredictValue(analytics.DataType(req.DataType), series, daysAhead, method, time.Now())
	if err != nil {
		return nil, fromEngine(err)
	}

	return &models.ValueForecastResponse{
		DataType:  req.DataType,
		DaysAhead: daysAhead,
		Method:    string(method),
		Value:     value,
	}, nil
}
