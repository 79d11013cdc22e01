package domain

import "errors"

// Error kinds. Every domain error unwraps to exactly one of these so the
// transport layer can map it to a status code without knowing the details.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Error is a domain error carrying a client-safe message and its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Validation returns an ad-hoc validation error with the given message.
func Validation(msg string) *Error {
	return newError(ErrValidation, msg)
}

var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")
	ErrInvalidToken       = newError(ErrUnauthorized, "could not validate credentials")
	ErrInactiveUser       = newError(ErrUnauthorized, "inactive user")

	ErrNotEnoughPrivileges = newError(ErrForbidden, "not enough privileges")
	ErrCannotDeleteSelf    = newError(ErrForbidden, "cannot delete your own account")

	ErrUserNotFound     = newError(ErrNotFound, "user not found")
	ErrTerminalNotFound = newError(ErrNotFound, "TPE not found")

	ErrUsernameExists = newError(ErrConflict, "username already registered")
	ErrEmailExists    = newError(ErrConflict, "email already registered")
	ErrShopIDExists   = newError(ErrConflict, "ShopID already exists")

	ErrTooManyMerchantCards = newError(ErrValidation, "maximum 8 merchant cards allowed")
	ErrInvalidModel         = newError(ErrValidation, "tpe_model must be one of: Ingenico Desk 5000, Ingenico Move 5000")
	ErrInvalidUnitCount     = newError(ErrValidation, "number_of_tpe must be at least 1")
	ErrInvalidRole          = newError(ErrValidation, "role must be one of: admin, user")
	ErrInvalidUsername      = newError(ErrValidation, "username must be between 3 and 50 characters")
	ErrPasswordTooShort     = newError(ErrValidation, "password must be at least 6 characters")
	ErrServiceNameRequired  = newError(ErrValidation, "service_name is required")
	ErrServiceNameTooLong   = newError(ErrValidation, "service_name must be at most 200 characters")
	ErrShopIDTooLong        = newError(ErrValidation, "shop_id must be at most 50 characters")
)
