package handler

import (
	"time"

	"go-agroprod-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboard    service.DashboardService
	traceability service.TraceabilityService
}

func NewDashboardHandler(dashboard service.DashboardService, traceability service.TraceabilityService) *DashboardHandler {
	return &DashboardHandler{
		dashboard:    dashboard,
		traceability: traceability,
	}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.GetStats(time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stats)
}

// GetActivity returns one point per calendar day, oldest first. Days without
// production appear as zeros.
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 || days > 90 {
		return c.Status(400).JSON(fiber.Map{"error": "days must be between 1 and 90"})
	}

	series, err := h.dashboard.GetActivity(time.Now(), days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(series)
}

func (h *DashboardHandler) GetLots(c *fiber.Ctx) error {
	lots, err := h.traceability.GetLotSummaries()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(lots)
}
