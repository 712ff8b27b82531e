package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/models"
)

// AssessQuality handles data-quality assessment requests
// POST /v1/quality/assess
func (h *Handler) AssessQuality(c *fiber.Ctx) error {
	var req models.QualityRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	assessment, err := h.qualityService.Assess(&req)
	if err != nil {
		return err
	}
	return c.JSON(assessment)
}

// Variability handles variability metric requests
// POST /v1/quality/variability
func (h *Handler) Variability(c *fiber.Ctx) error {
	var req models.VariabilityRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Values)); err != nil {
		return err
	}

	metrics, err := h.qualityService.Variability(&req)
	if err != nil {
		return err
	}
	return c.JSON(metrics)
}

// DataGaps handles gap detection requests
// POST /v1/quality/gaps
func (h *Handler) DataGaps(c *fiber.Ctx) error {
	var req models.GapsRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	gaps, err := h.qualityService.Gaps(&req)
	if err != nil {
		return err
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}
	return c.JSON(fiber.Map{
		"frequency": frequency,
		"gaps":      gaps,
		"count":     len(gaps),
	})
}
