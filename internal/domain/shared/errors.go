// Package shared contains common domain types, errors and events
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Validation errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyValue    = errors.New("value cannot be empty")
	ErrInvalidFormat = errors.New("invalid format")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "subject", "tutor", "lesson"
	Op      string // Operation that failed, e.g., "Parse", "Book"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// Tuition domain errors
var (
	ErrInvalidSubject = NewDomainError("subject", "Parse", ErrInvalidInput, "unknown subject")
	ErrInvalidDate    = NewDomainError("timeutil", "ParseDate", ErrInvalidFormat, "date must be YYYY-MM-DD")
	ErrInvalidHour    = NewDomainError("lesson", "ParseHour", ErrInvalidFormat, "hour must be a whole number")

	// ErrEmptySubject is also an ErrInvalidSubject: blank text names no subject.
	ErrEmptySubject = &DomainError{
		Domain:  "subject",
		Op:      "Parse",
		Kind:    ErrEmptyValue,
		Message: "subject cannot be empty",
		Err:     ErrInvalidSubject,
	}
)

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrInvalidFormat)
}
