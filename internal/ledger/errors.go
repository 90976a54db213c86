package ledger

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes domain errors so the presentation shell can choose
// how to render them.
type ErrorCode string

const (
	// ErrCodeValidation indicates bad caller input: a negative amount, a
	// duplicate unique name, a transfer from a farmer to itself.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeReference indicates a reference to a product, farmer, or
	// shipment that does not exist.
	ErrCodeReference ErrorCode = "REFERENCE"
)

// DomainError is an error detected before or during a ledger write.
// Unexpected storage errors are NOT wrapped in DomainError; they propagate
// as-is so callers never mistake an I/O failure for bad input.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a validation error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrCodeValidation
}

// IsReference reports whether err is a referential error.
func IsReference(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrCodeReference
}

func validationError(format string, args ...any) *DomainError {
	return &DomainError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

func referenceError(format string, args ...any) *DomainError {
	return &DomainError{Code: ErrCodeReference, Message: fmt.Sprintf(format, args...)}
}
