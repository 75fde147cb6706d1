package handlers

import (
	"Stash/internal/models"
	"Stash/internal/services"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	statsService     services.StatsService
	analyticsService services.AnalyticsService
}

func NewHomeHandler(statsService services.StatsService, analyticsService services.AnalyticsService) *HomeHandler {
	return &HomeHandler{statsService: statsService, analyticsService: analyticsService}
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	stats, err := h.statsService.HomeStats(CurrentUser(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(stats)
}

func (h *HomeHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "q is required"})
	}

	user := CurrentUser(c)
	results, err := h.statsService.Search(user, query)
	if err != nil {
		return errorResponse(c, err)
	}

	h.analyticsService.Track(user, models.EventSearch, nil, nil, map[string]any{"query": query})

	return c.JSON(results)
}

func (h *HomeHandler) Room(c *fiber.Ctx) error {
	roomType := models.RoomType(c.Params("roomType"))
	view, err := h.statsService.RoomView(CurrentUser(c), roomType)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(view)
}

func (h *HomeHandler) AnalyticsSummary(c *fiber.Ctx) error {
	days := 30
	since := time.Now().AddDate(0, 0, -days)
	counts, err := h.analyticsService.EventCounts(CurrentUser(c), since)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"since": since, "counts": counts})
}
