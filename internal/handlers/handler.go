// Package handlers wires the HTTP surface onto the analysis services.
// Handlers parse the request, delegate to a service and hand errors to the
// error middleware, which maps service codes onto HTTP statuses.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/analytics"
	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/services"
	"github.com/vitalyze/vitalyze/internal/utils"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger *logging.Logger
	// Services
	analysisService *services.AnalysisService
	anomalyService  *services.AnomalyService
	forecastService *services.ForecastService
	qualityService  *services.QualityService
}

// New creates a new handler instance
func New(logger *logging.Logger, policy analytics.Policy) *Handler {
	return &Handler{
		logger:          logger,
		analysisService: services.NewAnalysisService(logger, policy),
		anomalyService:  services.NewAnomalyService(logger, policy),
		forecastService: services.NewForecastService(logger, policy),
		qualityService:  services.NewQualityService(logger, policy),
	}
}

// parseBody unmarshals the request body, rejecting malformed JSON
func (h *Handler) parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logging.FromContext(c.UserContext()).Warn("Malformed request body",
			"path", c.Path(),
			"error", err,
		)
		return services.NewServiceError(services.CodeInvalidRequest, "invalid JSON body: "+err.Error())
	}
	return nil
}

// checkObservationCount enforces the per-request record cap
func checkObservationCount(count int) error {
	if count <= utils.MaxObservationsPerRequest {
		return nil
	}
	svcErr := services.NewServiceError(services.CodeInvalidRequest, "too many observations in a single request")
	svcErr.Details = map[string]interface{}{
		"count": count,
		"limit": utils.MaxObservationsPerRequest,
	}
	return svcErr
}
