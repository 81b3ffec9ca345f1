package errors

import "fmt"

// ErrorCode represents a Canvas error code.
type ErrorCode string

const (
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"      // 400
	ErrNotFound            ErrorCode = "NOT_FOUND"            // 404
	ErrProfileIncomplete   ErrorCode = "PROFILE_INCOMPLETE"   // 422
	ErrUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE" // 502
	ErrMalformedReply      ErrorCode = "MALFORMED_REPLY"      // 502
	ErrInternal            ErrorCode = "INTERNAL"             // 500
)

// CanvasError represents a structured error with code, status, and details.
type CanvasError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CanvasError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *CanvasError {
	return &CanvasError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing idea, message, or category.
func NewNotFound(identifier string) *CanvasError {
	return &CanvasError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewProfileIncomplete creates a 422 error for generation attempted before
// the intake profile has all three fields.
func NewProfileIncomplete(missing []string) *CanvasError {
	return &CanvasError{
		Code:    ErrProfileIncomplete,
		Status:  422,
		Message: fmt.Sprintf("profile is missing required fields: %v", missing),
		Details: map[string]any{"missing_fields": missing},
	}
}

// NewUpstreamUnavailable creates a 502 error for transport-level failures
// reaching the suggestion endpoint.
func NewUpstreamUnavailable(err error) *CanvasError {
	msg := "suggestion endpoint unreachable"
	if err != nil {
		msg = err.Error()
	}
	return &CanvasError{
		Code:    ErrUpstreamUnavailable,
		Status:  502,
		Message: msg,
	}
}

// NewMalformedReply creates a 502 error for replies the extraction step
// could not decode.
func NewMalformedReply(reason string) *CanvasError {
	return &CanvasError{
		Code:    ErrMalformedReply,
		Status:  502,
		Message: fmt.Sprintf("could not decode suggestion reply: %s", reason),
		Details: map[string]any{"reason": reason},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *CanvasError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CanvasError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a CanvasError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*CanvasError); ok {
		return cErr.Code == code
	}
	return false
}
