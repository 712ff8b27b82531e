package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/models"
)

// DetectAnomalies handles anomaly detection requests
// POST /v1/anomalies/detect
func (h *Handler) DetectAnomalies(c *fiber.Ctx) error {
	var req models.AnomalyRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	points, err := h.anomalyService.DetectAnomalies(&req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data_type": req.DataType,
		"anomalies": points,
		"count":     len(points),
	})
}

// DetectOutliers handles outlier detection over bare value series
// POST /v1/outliers
func (h *Handler) DetectOutliers(c *fiber.Ctx) error {
	var req models.OutlierRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Values)); err != nil {
		return err
	}

	resp, err := h.anomalyService.DetectOutliers(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
