// Package errors defines the error taxonomy of record fetches.
// FetchError classifies a failure; HTTPStatusError carries upstream status details.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// FetchError represents a failure while fetching or validating remote records
type FetchError struct {
	Type    string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeTransport  = "TRANSPORT"
	ErrorTypeHTTPStatus = "HTTP_STATUS"
	ErrorTypeDecode     = "DECODE"
	ErrorTypeValidation = "VALIDATION"
	ErrorTypeInvalidID  = "INVALID_ID"
)

// ErrMalformedPayload is wrapped by every validation failure.
var ErrMalformedPayload = stderrors.New("malformed payload")

// HTTPStatusError means the server answered with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
	Reason     string
}

func (e *HTTPStatusError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Reason)
}

// NewFetchError creates a new FetchError
func NewFetchError(errorType, message string, cause error) *FetchError {
	return &FetchError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewTransportError wraps a network-level failure
func NewTransportError(url string, cause error) *FetchError {
	return NewFetchError(ErrorTypeTransport, fmt.Sprintf("request to %s failed", url), cause)
}

// NewHTTPStatusError reports a non-success status. Reason defaults to the standard status text.
func NewHTTPStatusError(url string, statusCode int, reason string) *FetchError {
	if reason == "" {
		reason = http.StatusText(statusCode)
	}
	return NewFetchError(ErrorTypeHTTPStatus, fmt.Sprintf("unexpected response from %s", url),
		&HTTPStatusError{StatusCode: statusCode, Reason: reason})
}

// NewDecodeError reports a body that is not valid JSON
func NewDecodeError(url string, cause error) *FetchError {
	return NewFetchError(ErrorTypeDecode, fmt.Sprintf("invalid JSON from %s", url), cause)
}

// NewValidationError reports a payload that does not match the expected record shape
func NewValidationError(cause error) *FetchError {
	if cause == nil {
		cause = ErrMalformedPayload
	} else if !stderrors.Is(cause, ErrMalformedPayload) {
		cause = fmt.Errorf("%w: %w", ErrMalformedPayload, cause)
	}
	return NewFetchError(ErrorTypeValidation, "record failed shape validation", cause)
}

// NewInvalidIDError reports an identifier that cannot address a record
func NewInvalidIDError(id int) *FetchError {
	return NewFetchError(ErrorTypeInvalidID, fmt.Sprintf("invalid record id: %d", id), nil)
}

// TypeOf returns the FetchError type of err, or "" when err is not a FetchError.
func TypeOf(err error) string {
	var fe *FetchError
	if stderrors.As(err, &fe) {
		return fe.Type
	}
	return ""
}

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *HTTPStatusError
	if stderrors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
