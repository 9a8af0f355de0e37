// Package apperrors defines the closed set of errors surfaced to API clients.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind is a client-visible error category.
type Kind string

const (
	KindValidation   Kind = "validation_error"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindInternal     Kind = "internal"
)

// APIError is an error that is safe to show to a client.
type APIError struct {
	Kind     Kind
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches API errors by kind and message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func newAPIError(kind Kind, code int, msg string) *APIError {
	return &APIError{Kind: kind, HTTPCode: code, Message: msg}
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewErrValidation reports malformed client input.
func NewErrValidation(msg string) *APIError {
	return newAPIError(KindValidation, http.StatusBadRequest, msg)
}

// NewErrEmailIsTaken is returned on registration with an email that is already used.
// Conflicts are reported as 400 to stay compatible with existing clients.
func NewErrEmailIsTaken() *APIError {
	return newAPIError(KindConflict, http.StatusBadRequest, "User already exists")
}

func NewErrInvalidCredentials() *APIError {
	return newAPIError(KindUnauthorized, http.StatusUnauthorized, "Invalid credentials")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newAPIError(KindUnauthorized, http.StatusUnauthorized, "No token provided")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newAPIError(KindUnauthorized, http.StatusUnauthorized, "Invalid token")
}

func NewErrEntryNotFound() *APIError {
	return newAPIError(KindNotFound, http.StatusNotFound, "Entry not found")
}

func NewErrUserNotFound() *APIError {
	return newAPIError(KindNotFound, http.StatusNotFound, "User not found")
}

// NewErrInternalServerError never carries the underlying cause.
func NewErrInternalServerError() *APIError {
	return newAPIError(KindInternal, http.StatusInternalServerError, "Server error")
}
