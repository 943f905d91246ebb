package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/studybuddy-api/internal/domain"
)

// ServiceError wraps errors from a service operation with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "get_flashcards")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Validation errors are returned unchanged so the API can report them as-is.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
