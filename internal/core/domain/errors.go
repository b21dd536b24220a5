package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
// The three login failures stay distinct: unknown username, wrong password,
// and a credential row whose password_hash was never set (a data-setup bug,
// not a user error).
var (
	ErrInvalidUsername      = errors.New("invalid username")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrMisconfiguredAccount = errors.New("password is not set correctly for this user")
)

// Record errors
var (
	ErrValidation           = errors.New("validation failed")
	ErrConfirmationRequired = errors.New("delete requires confirmation")
)
