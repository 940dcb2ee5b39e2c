package api

import (
	"errors"
	"net/http"

	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error types
// to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors. A user lookup failing during authentication is a
	// 401 (handled by the middleware); in every other context a missing
	// entity is a 404.
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate and validation errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrEmptyFirstName),
		errors.Is(err, domain.ErrEmptyLastName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrEmptyTaskDescription):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message for
// the given error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Access denied. Invalid token."

	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, domain.ErrInvalidStatus):
		return "Invalid status"

	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email format"

	case errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return "Invalid password format"

	case errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrEmptyTaskDescription):
		return "Title and description are required"

	case errors.Is(err, domain.ErrEmptyFirstName),
		errors.Is(err, domain.ErrEmptyLastName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyPassword):
		return "All fields are required: firstName, lastName, email, password"

	default:
		return "An unexpected error occurred"
	}
}
