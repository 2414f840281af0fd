package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the caller address for every operation. With a
// Firebase client it verifies bearer ID tokens; without one (local runs)
// it falls back to the X-Address header so the marketplace can be
// exercised against the in-memory store.
type AuthMiddleware struct {
	authClient *auth.Client
}

func NewAuthMiddleware(authClient *auth.Client) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.authClient == nil {
			address := c.Request().Header.Get("X-Address")
			if address == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "X-Address header is required")
			}
			c.Set("address", address)
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.authClient.VerifyIDToken(context.Background(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("address", token.UID)

		return next(c)
	}
}

// CallerAddress reads the identity the middleware attached to the request.
func CallerAddress(c echo.Context) string {
	address, _ := c.Get("address").(string)
	return address
}
