package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for domain errors
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeWindowExpired = "WINDOW_EXPIRED"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError is a business error whose Code decides how it is reported to clients.
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code and message,
// so that freshly built errors match the package sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates an error for missing or malformed input.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewNotFoundError creates an error for an unknown order or item.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(ErrCodeNotFound, message)
}

// NewWindowExpiredError creates an error for an order whose status no longer allows edits.
func NewWindowExpiredError(message string) *DomainError {
	return NewDomainError(ErrCodeWindowExpired, message)
}

// Common domain errors
var (
	ErrMissingParameters   = NewValidationError("Missing parameters")
	ErrOrderNotFound       = NewNotFoundError("Order not found")
	ErrUpdateWindowExpired = NewWindowExpiredError("Order update window expired!!")
	ErrCancelWindowExpired = NewWindowExpiredError("Order cancellation window is expired!!")
	ErrUnauthorised        = NewDomainError(ErrCodeUnauthorised, "Authentication error")
)
