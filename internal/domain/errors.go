package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	// ErrNoToken is returned by operations that need a session when none is stored.
	ErrNoToken = errors.New("No authentication token found")

	// ErrStale marks a result that was discarded because a newer request
	// for the same slice committed first or the originating task was cancelled.
	ErrStale = errors.New("stale result discarded")
)

// NetworkMessage is the display copy for requests that never got a response.
const NetworkMessage = "Network error. Please check your connection."

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// It is produced locally, before any network call is made.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// First returns the message of the first field error.
func (e *ValidationError) First() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// APIErrorKind classifies a failed remote call.
type APIErrorKind string

const (
	// KindNetwork means no response was received.
	KindNetwork APIErrorKind = "network"
	// KindServer means the server answered with a non-2xx status.
	KindServer APIErrorKind = "server"
	// KindAuth is a KindServer error with status 401 or 403.
	KindAuth APIErrorKind = "auth"
	// KindDomain means a 2xx envelope carried success=false.
	KindDomain APIErrorKind = "domain"
)

// APIError is returned by the HTTP adapter for every failed request.
type APIError struct {
	Kind    APIErrorKind
	Status  int
	Message string // server-provided message, may be empty
	Err     error  // transport error for KindNetwork
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	case KindDomain:
		if e.Message != "" {
			return "request rejected: " + e.Message
		}
		return "request rejected"
	}
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// Is lets errors.Is match API errors against the status sentinels.
func (e *APIError) Is(target error) bool {
	if e.Kind == KindNetwork || e.Kind == KindDomain {
		return false
	}
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}

// StatusCopy holds operation-specific display strings keyed by HTTP status.
// Override entries win over the server message; Default entries are used
// only when the server sent no message.
type StatusCopy struct {
	Override map[int]string
	Default  map[int]string
	// Fallback is used for domain errors without a message and for
	// unclassified errors.
	Fallback string
}

// Describe resolves the human-readable message for err.
func Describe(err error, sc StatusCopy) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.First()
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		if errors.Is(err, ErrNoToken) {
			return ErrNoToken.Error()
		}
		if sc.Fallback != "" {
			return sc.Fallback
		}
		return err.Error()
	}

	switch apiErr.Kind {
	case KindNetwork:
		return NetworkMessage
	case KindDomain:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if sc.Fallback != "" {
			return sc.Fallback
		}
		return "Request failed"
	}

	if msg, ok := sc.Override[apiErr.Status]; ok {
		return msg
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if msg, ok := sc.Default[apiErr.Status]; ok {
		return msg
	}
	return fmt.Sprintf("Server error (%d)", apiErr.Status)
}
