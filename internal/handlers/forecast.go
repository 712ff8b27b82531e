package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/models"
)

// ForecastTrend handles multi-point trend forecast requests
// POST /v1/forecast/trend
func (h *Handler) ForecastTrend(c *fiber.Ctx) error {
	var req models.ForecastTrendRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	prediction, err := h.forecastService.PredictTrend(&req)
	if err != nil {
		return err
	}
	return c.JSON(prediction)
}

// ForecastValue handles single-value forecast requests
// POST /v1/forecast/value
func (h *Handler) ForecastValue(c *fiber.Ctx) error {
	var req models.ForecastValueRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	resp, err := h.forecastService.PredictValue(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
