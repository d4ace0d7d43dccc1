package domain

import (
	"errors"
	"fmt"
)

// Error codes for domain errors.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeStoreFailure    = "STORE_FAILURE"
	CodeExternalService = "EXTERNAL_SERVICE_FAILURE"
	CodeInternal        = "INTERNAL_ERROR"
)

// DomainError is a typed error carrying a stable code for API mapping.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFound reports that the named resource does not exist.
func NewNotFound(resource string, id any) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

// NewValidation reports a caller mistake that was rejected before any write.
func NewValidation(message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewStoreFailure wraps a persistence error.
func NewStoreFailure(op string, err error) *DomainError {
	return &DomainError{
		Code:    CodeStoreFailure,
		Message: fmt.Sprintf("failed to %s", op),
		Err:     err,
	}
}

// NewExternalService wraps a failure from an outbound dependency.
func NewExternalService(service string, err error) *DomainError {
	return &DomainError{
		Code:    CodeExternalService,
		Message: fmt.Sprintf("%s request failed", service),
		Err:     err,
	}
}

// NewInternal wraps an unexpected failure.
func NewInternal(message string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsValidation reports whether err is a validation domain error.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsStoreFailure reports whether err is a store-failure domain error.
func IsStoreFailure(err error) bool { return hasCode(err, CodeStoreFailure) }
