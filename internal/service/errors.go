package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a chat request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExternalService is returned when the generative service failed and
	// no fallback answer was produced.
	ErrExternalService = errors.New("external service error")
)

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError prefixes err with msg. A nil err stays nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// externalError tags err as an external service failure while keeping the
// original error in the chain.
func externalError(err error) error {
	return fmt.Errorf("%w: %w", ErrExternalService, err)
}
