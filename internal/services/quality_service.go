package services

import (
	"time"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/analytics/quality"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/models"
)

// QualityService runs data-quality assessment, variability metrics and gap
// detection for the API
type QualityService struct {
	logger   *logging.Logger
	assessor *quality.Assessor
}

// NewQualityService creates a new QualityService
func NewQualityService(logger *logging.Logger, policy analytics.Policy) *QualityService {
	return &QualityService{
		logger:   logger,
		assessor: quality.NewAssessor(policy, logger),
	}
}

// Assess scores the record set on the four quality dimensions
func (s *QualityService) Assess(req *models.QualityRequest) (*quality.Assessment, error) {
	series, err := models.ParseSeries(req.Observations)
	if err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	assessment, err := s.assessor.AssessDataQuality(analytics.DataType(req.DataType), series, time.Now())
	if err != nil {
		return nil, fromEngine(err)
	}
	return &assessment, nil
}

// Variability computes the variability metrics of a bare value series
func (s *QualityService) Variability(req *models.VariabilityRequest) (*quality.Metrics, error) {
	metrics, err := quality.CalculateVariability(req.Values)
	if err != nil {
		return nil, fromEngine(err)
	}
	return &metrics, nil
}

// Gaps reports sampling holes at the expected cadence
func (s *QualityService) Gaps(req *models.GapsRequest) ([]quality.Gap, error) {
	frequencyStr := req.Frequency
	if frequencyStr == "" {
		frequencyStr = string(quality.FrequencyDaily)
	}
	frequency, err := quality.ParseFrequency(frequencyStr)
	if err != nil {
		return nil, fromEngine(err)
	}

	series, err := models.ParseSeries(req.Observations)
	if err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	gaps := s.assessor.IdentifyDataGaps(series, frequency)
	if gaps == nil {
		gaps = []quality.Gap{}
	}
	return gaps, nil
}
