package generation

import "errors"

// ErrUnavailable is the category every generator failure belongs to.
// Callers that only need to know "no usable text" check for this one.
var ErrUnavailable = errors.New("text generation unavailable")

// Specific failures. Each wraps ErrUnavailable.
var (
	// ErrNotConfigured is returned when no credential is configured.
	ErrNotConfigured = wrapUnavailable("generator not configured")

	// ErrUpstreamStatus is returned when the API answers with a non-2xx status.
	ErrUpstreamStatus = wrapUnavailable("unexpected status from text-generation API")

	// ErrTransientFailure is returned for transport-level errors.
	ErrTransientFailure = wrapUnavailable("transient error calling text-generation API")

	// ErrInvalidResponse is returned when the response body cannot be parsed or is malformed
	ErrInvalidResponse = wrapUnavailable("invalid response from text-generation API")

	// ErrContentBlocked is returned when the API blocks the content due to safety filters
	ErrContentBlocked = wrapUnavailable("content blocked by safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = wrapUnavailable("invalid generator configuration")
)

type unavailableError struct {
	msg string
}

func (e *unavailableError) Error() string { return e.msg }

func (e *unavailableError) Unwrap() error { return ErrUnavailable }

func wrapUnavailable(msg string) error {
	return &unavailableError{msg: msg}
}
