package models

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	RateLimitExceeded   ErrorKind = "RateLimitExceeded"
	ValidationFailed    ErrorKind = "ValidationFailed"
	DuplicateSubmission ErrorKind = "DuplicateSubmission"
	PersistenceFailed   ErrorKind = "PersistenceFailed"
	NotificationFailed  ErrorKind = "NotificationFailed"
)

const (
	RateLimitExceededMessage   = "Too many requests. Please try again later."
	ValidationFailedMessage    = "Validation failed"
	DuplicateSubmissionMessage = "Duplicate field value entered"
	InternalServerErrorMessage = "Internal Server Error"
)

// HTTPError is an error that knows how it should be presented to an HTTP client.
// Message and Details are safe to show to the caller, the wrapped cause is not.
type HTTPError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Details    []string
	cause      error
}

func NewHTTPError(kind ErrorKind, statusCode int, message string, cause error) *HTTPError {
	return &HTTPError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		cause:      cause,
	}
}

func NewRateLimitExceededError() *HTTPError {
	return NewHTTPError(RateLimitExceeded, http.StatusTooManyRequests, RateLimitExceededMessage, nil)
}

func NewValidationFailedError(message string, cause error) *HTTPError {
	return NewHTTPError(ValidationFailed, http.StatusBadRequest, message, cause)
}

func NewDuplicateSubmissionError(cause error) *HTTPError {
	return NewHTTPError(DuplicateSubmission, http.StatusBadRequest, DuplicateSubmissionMessage, cause)
}

func NewPersistenceFailedError(cause error) *HTTPError {
	return NewHTTPError(PersistenceFailed, http.StatusInternalServerError, InternalServerErrorMessage, cause)
}

func (e *HTTPError) WithDetails(details ...string) *HTTPError {
	e.Details = details
	return e
}

func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// AsHTTPError finds an HTTPError in err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
