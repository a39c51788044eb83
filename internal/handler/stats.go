package handler

import (
	"net/http"

	"bistro-api/internal/service"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) AdminStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.statsService.AdminStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) OrderStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.statsService.OrderStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
