package theme

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known theme error categories.
type ErrorCode string

const (
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeInvalidMode ErrorCode = "INVALID_MODE"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeDuplicate   ErrorCode = "DUPLICATE_ID"
)

// DomainError represents a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Sentinels for errors.Is comparisons. Matching compares Code and Message, so
// errors built by the helpers below match regardless of their context.
var (
	ErrThemeNotFound = &DomainError{Code: ErrCodeNotFound, Message: "theme not found"}
	ErrInvalidMode   = &DomainError{Code: ErrCodeInvalidMode, Message: "invalid theme mode"}
	ErrEmptyCatalog  = &DomainError{Code: ErrCodeValidation, Message: "catalog is empty"}
	ErrDuplicateID   = &DomainError{Code: ErrCodeDuplicate, Message: "duplicate theme id"}
)

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if id, ok := e.Context["id"]; ok {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, id)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

func withID(sentinel *DomainError, id string) *DomainError {
	return &DomainError{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Context: map[string]interface{}{"id": id},
	}
}

// NewNotFoundError reports a lookup miss for id.
func NewNotFoundError(id string) *DomainError {
	return withID(ErrThemeNotFound, id)
}

// NewInvalidModeError reports a mode outside light, dark and auto.
func NewInvalidModeError(mode string) *DomainError {
	return withID(ErrInvalidMode, mode)
}
