package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

// Context keys set by Auth.
const (
	UserKey     = "user"
	UsernameKey = "username"
	RoleKey     = "role"
)

// Auth resolves the bearer token into an active user and stores it in the
// request context under UserKey.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return domain.ErrInvalidToken
			}

			user, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(UserKey, user)
			c.Set(UsernameKey, user.Username)
			c.Set(RoleKey, user.Role)

			return next(c)
		}
	}
}
