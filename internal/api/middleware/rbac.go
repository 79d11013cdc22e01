package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// Authorizer decides whether a user holds one of the given roles.
type Authorizer interface {
	Authorize(user *domain.User, roles ...string) error
}

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(authz Authorizer, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserKey).(*domain.User)
			if err := authz.Authorize(user, allowedRoles...); err != nil {
				return err
			}
			return next(c)
		}
	}
}
