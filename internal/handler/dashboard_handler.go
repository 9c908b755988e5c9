package handler

import (
	"strconv"

	"go-furniture-resale/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns inventory overview statistics.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetSales returns per-day order volume and revenue.
// GET /api/dashboard/sales?days=7
func (h *DashboardHandler) GetSales(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetSales(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}
