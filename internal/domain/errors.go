package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)

// Relationship errors. Each wraps one of the sentinels above so HTTP mapping
// only needs to know the coarse category.
var (
	// ErrReferenceNotFound means a relationship target id does not resolve.
	ErrReferenceNotFound = fmt.Errorf("reference not found: %w", ErrNotFound)

	// ErrAlreadyLinked means the target is bound to a different counterpart,
	// or re-attachment of an existing edge was attempted.
	ErrAlreadyLinked = fmt.Errorf("reference already linked: %w", ErrConflict)

	// ErrReferenceMismatch means a detach was requested between two ends that
	// do not currently point at each other.
	ErrReferenceMismatch = fmt.Errorf("reference mismatch: %w", ErrNotFound)
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError holding a single field failure.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
