package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/models"
)

// AnalyzeTrends handles trend analysis requests
// POST /v1/trends/analyze
func (h *Handler) AnalyzeTrends(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	analysis, err := h.analysisService.Analyze(&req)
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}

// TrendStrength handles trend strength scoring requests
// POST /v1/trends/strength
func (h *Handler) TrendStrength(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}
	if err := checkObservationCount(len(req.Observations)); err != nil {
		return err
	}

	resp, err := h.analysisService.Strength(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
