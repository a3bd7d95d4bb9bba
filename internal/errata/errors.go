package errata

import (
	"errors"
	"fmt"
)

// APIError represents a remote call that returned a non-success status.
// It carries the error detail the server reported verbatim so operators
// can diagnose the failure without re-issuing the request.
type APIError struct {
	// Method and Endpoint identify the failed request.
	Method   string
	Endpoint string

	// StatusCode is the HTTP status the server returned.
	StatusCode int

	// Detail is the server-reported error message, when present.
	Detail string
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s returned %d", e.Method, e.Endpoint, e.StatusCode)
}

// IsAPIError checks if an error is an APIError using error unwrapping.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// NewAPIError creates an APIError for a failed request, extracting the
// error detail from the response body.
func NewAPIError(method, endpoint string, resp *Response) *APIError {
	return &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Detail:     resp.ErrorDetail(),
	}
}
