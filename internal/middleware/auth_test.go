package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro-api/internal/auth"

	"github.com/labstack/echo/v4"
)

type mockAdminChecker struct {
	isAdminFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockAdminChecker) IsAdmin(ctx context.Context, email string) (bool, error) {
	return m.isAdminFn(ctx, email)
}

func newContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body["message"]
}

func TestRequireTokenMissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	c, rec := newContext(t, "")

	called := false
	if err := RequireToken(tm)(okHandler(&called))(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "unauthorized access" {
		t.Errorf("message = %q, want %q", msg, "unauthorized access")
	}
	if called {
		t.Error("handler ran without a token")
	}
}

func TestRequireTokenInvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	c, rec := newContext(t, "Bearer garbage")

	called := false
	if err := RequireToken(tm)(okHandler(&called))(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran with an invalid token")
	}
}

func TestRequireTokenValid(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tm.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newContext(t, "Bearer "+token)

	called := false
	if err := RequireToken(tm)(okHandler(&called))(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Fatal("handler did not run with a valid token")
	}

	claims := ClaimsFrom(c)
	if claims == nil || claims.Email != "a@x.com" {
		t.Errorf("claims = %+v, want email a@x.com", claims)
	}
}

func TestRequireAdminForbidden(t *testing.T) {
	c, rec := newContext(t, "")
	c.Set(claimsContextKey, &auth.Claims{Email: "a@x.com"})

	users := &mockAdminChecker{
		isAdminFn: func(ctx context.Context, email string) (bool, error) {
			if email != "a@x.com" {
				t.Errorf("IsAdmin called with %q", email)
			}
			return false, nil
		},
	}

	called := false
	if err := RequireAdmin(users)(okHandler(&called))(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "forbidden access" {
		t.Errorf("message = %q, want %q", msg, "forbidden access")
	}
	if called {
		t.Error("handler ran for a non-admin identity")
	}
}

func TestRequireAdminAllowed(t *testing.T) {
	c, rec := newContext(t, "")
	c.Set(claimsContextKey, &auth.Claims{Email: "boss@x.com"})

	users := &mockAdminChecker{
		isAdminFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	called := false
	if err := RequireAdmin(users)(okHandler(&called))(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusOK || !called {
		t.Errorf("status = %d, called = %v, want 200 and handler run", rec.Code, called)
	}
}

func TestRequireAdminWithoutClaims(t *testing.T) {
	c, rec := newContext(t, "")

	users := &mockAdminChecker{
		isAdminFn: func(ctx context.Context, email string) (bool, error) {
			t.Fatal("IsAdmin called without claims")
			return false, nil
		},
	}

	called := false
	if err := RequireAdmin(users)(okHandler(&called))(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized || called {
		t.Errorf("status = %d, called = %v, want 401 and handler skipped", rec.Code, called)
	}
}

func TestRequireSelf(t *testing.T) {
	tests := []struct {
		name      string
		caller    string
		requested string
		wantCode  int
	}{
		{"own email", "a@x.com", "a@x.com", 0},
		{"other email", "a@x.com", "b@x.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(t, "")
			c.Set(claimsContextKey, &auth.Claims{Email: tt.caller})

			err := RequireSelf(c, tt.requested)

			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("self access rejected: %v", err)
				}
				return
			}

			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("error = %v, want *echo.HTTPError", err)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", httpErr.Code, tt.wantCode)
			}
			if httpErr.Message != "forbidden access" {
				t.Errorf("message = %v, want forbidden access", httpErr.Message)
			}
		})
	}
}

func TestRequireSelfWithoutClaims(t *testing.T) {
	c, _ := newContext(t, "")

	err := RequireSelf(c, "a@x.com")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401 HTTPError", err)
	}
}
