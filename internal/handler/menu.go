package handler

import (
	"net/http"

	"bistro-api/internal/model"
	"bistro-api/internal/service"

	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

func (h *MenuHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var item model.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.menuService.AddItem(ctx, &item)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *MenuHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var item model.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.menuService.UpdateItem(ctx, id, &item)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *MenuHandler) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	result, err := h.menuService.DeleteItem(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
