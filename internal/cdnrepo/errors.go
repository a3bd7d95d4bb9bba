package cdnrepo

import (
	"errors"
	"fmt"
)

// ConflictError indicates the server returned more than one record for a
// name that must be unique. This points at a data integrity problem on the
// server side and is never retried.
type ConflictError struct {
	ResourceType string
	ResourceName string
	Count        int
}

// Error implements the error interface for ConflictError.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("found %d %s records named %q, expected at most one", e.Count, e.ResourceType, e.ResourceName)
}

// IsConflict checks if an error is a ConflictError using error unwrapping.
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// ValidationError indicates declared input that cannot be interpreted. It
// fails the run before any remote call is issued.
type ValidationError struct {
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation checks if an error is a ValidationError using error
// unwrapping.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
