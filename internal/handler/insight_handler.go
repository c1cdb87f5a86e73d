package handler

import (
	"go-agroprod-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InsightHandler struct {
	service service.InsightService
}

func NewInsightHandler(s service.InsightService) *InsightHandler {
	return &InsightHandler{service: s}
}

// GetProductionInsights asks the AI consultant for advice on the recent
// production journal.
// POST /api/v1/insights/production
func (h *InsightHandler) GetProductionInsights(c *fiber.Ctx) error {
	advice, err := h.service.AnalyzeProduction(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"advice": advice})
}
