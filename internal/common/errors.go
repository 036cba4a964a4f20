package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation failed")

	// Auth errors. Each one maps to a distinct client-facing message.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrForbidden        = errors.New("forbidden")

	// ErrInvalidCredentials is returned when an email/password pair does
	// not match a stored user.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Uniqueness conflicts.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
