package middleware

import (
	"context"
	"net/http"
	"strings"

	"bistro-api/internal/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// AdminChecker resolves whether a verified identity holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// TokenVerifier verifies a presented token and extracts its identity claim.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unauthorized access"})
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden access"})
}

// RequireToken rejects requests without a valid bearer token and stores the
// verified claims on the request context for downstream gates and handlers.
func RequireToken(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c)
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return unauthorized(c)
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireToken. Identity is already established
// here, so an insufficient role is 403, not 401.
func RequireAdmin(users AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return unauthorized(c)
			}

			admin, err := users.IsAdmin(c.Request().Context(), claims.Email)
			if err != nil {
				return err
			}
			if !admin {
				return forbidden(c)
			}

			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims set by RequireToken, or nil.
func ClaimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}

// RequireSelf enforces email-scoped access: the verified identity must match
// the requested email exactly, regardless of role. Handlers return the error
// as-is; echo's error handler renders the same {message} body as the gates.
func RequireSelf(c echo.Context, email string) error {
	claims := ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	}
	if claims.Email != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}
	return nil
}
