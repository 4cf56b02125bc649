package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Generic error kinds. Transport maps these to response codes; repositories
// and services return them, usually through one of the precise errors below.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Precise errors. errors.Is matches both the error itself and its kind.
var (
	ErrEmailTaken        = kind("email", ErrAlreadyExists)
	ErrUsernameTaken     = kind("username", ErrAlreadyExists)
	ErrUsernameNotFound  = kind("username", ErrNotFound)
	ErrUserNotFound      = kind("user", ErrNotFound)
	ErrSongNotFound      = kind("song", ErrNotFound)
	ErrBlipNotFound      = kind("blip", ErrNotFound)
	ErrCommentNotFound   = kind("comment", ErrNotFound)
	ErrFavoriteNotFound  = kind("favorite", ErrNotFound)
	ErrInvalidCredential = kind("credentials", ErrUnauthorized)
	ErrMissingParameter  = kind("missing parameter", ErrValidation)
)

func kind(subject string, k error) error {
	return fmt.Errorf("%s: %w", subject, k)
}

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// ValidationError reports every rejected field of one input. It matches
// ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, f := range e.Errors {
		parts[i] = f.String()
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
