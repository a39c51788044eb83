package handler

import (
	"net/http"

	"bistro-api/internal/auth"
	"bistro-api/internal/dto"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	tokens *auth.TokenManager
}

func NewAuthHandler(tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
	}
}

// IssueToken signs the posted identity claim. The claim is trusted as-is;
// sign-in happened upstream and this endpoint only mints the credential.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var claim map[string]any
	if err := c.Bind(&claim); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	email, _ := claim["email"].(string)
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	token, err := h.tokens.Issue(claim)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
