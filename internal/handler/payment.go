package handler

import (
	"net/http"

	"bistro-api/internal/dto"
	"bistro-api/internal/middleware"
	"bistro-api/internal/model"
	"bistro-api/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	clientSecret, err := h.paymentService.CreatePaymentIntent(ctx, req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CreateIntentResponse{ClientSecret: clientSecret})
}

// History returns the caller's own payment records; the path email must match
// the verified identity even for admins.
func (h *PaymentHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	if err := middleware.RequireSelf(c, email); err != nil {
		return err
	}

	payments, err := h.paymentService.HistoryByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Settle(c echo.Context) error {
	ctx := c.Request().Context()

	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.paymentService.Settle(ctx, &payment)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
