// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// Authentication errors. ErrInvalidPIN is deliberately the only thing
	// a failed login ever reveals.
	ErrInvalidPIN      = errors.New("invalid PIN")
	ErrSessionNotFound = errors.New("legacy session not found")
	ErrUnauthenticated = errors.New("unauthenticated")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Division-related errors
	ErrDivisionNotFound  = errors.New("division not found")
	ErrDivisionNameTaken = errors.New("division name already taken")

	// Task-related errors
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskUpdateNotFound = errors.New("task update not found")
	ErrDivisionRequired   = errors.New("at least one division is required")
)
