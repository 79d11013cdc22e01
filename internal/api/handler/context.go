package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tpemanager/tpe-manager/internal/api/middleware"
	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// currentUser returns the user injected by the Auth middleware. A missing
// user means the route was mounted without Auth; treat it as unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

// bindAndValidate binds the request body and runs the registered validator.
// Bind failures become validation errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Validation("invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
