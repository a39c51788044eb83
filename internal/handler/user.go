package handler

import (
	"net/http"
	"strconv"

	"bistro-api/internal/dto"
	"bistro-api/internal/middleware"
	"bistro-api/internal/model"
	"bistro-api/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

// CheckAdmin is the self-scoped admin check: a caller may only ask about
// their own verified email.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	if err := middleware.RequireSelf(c, email); err != nil {
		return err
	}

	admin, err := h.userService.IsAdmin(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: admin})
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if user.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	result, err := h.userService.CreateUser(ctx, &user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GrantAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	result, err := h.userService.GrantAdmin(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	result, err := h.userService.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
