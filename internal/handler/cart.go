package handler

import (
	"net/http"

	"bistro-api/internal/model"
	"bistro-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")

	items, err := h.cartService.ListByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.cartService.Add(ctx, &item)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	result, err := h.cartService.Remove(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
