package config

import (
	"fmt"
	"slices"
	"strings"

	"etctl/internal/cdnrepo"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Validate checks one repository declaration. Call it after ApplyDefaults
// so the content-type-dependent arch constraint sees the effective value.
//
// The server does not stop users from configuring Docker repos in ways
// that are invalid and impossible to fix with the web UI, so the Docker
// constraints are guarded here.
func Validate(params cdnrepo.Params) error {
	var errs ValidationErrors

	if params.Name == "" {
		errs.Add("name", "is required")
	}
	if !slices.Contains(cdnrepo.ReleaseTypes, params.ReleaseType) {
		errs.Add("release_type", fmt.Sprintf("must be one of %s", strings.Join(cdnrepo.ReleaseTypes, ", ")), params.ReleaseType)
	}
	if !slices.Contains(cdnrepo.ContentTypes, params.ContentType) {
		errs.Add("content_type", fmt.Sprintf("must be one of %s", strings.Join(cdnrepo.ContentTypes, ", ")), params.ContentType)
	}
	if !slices.Contains(cdnrepo.Arches, params.Arch) {
		errs.Add("arch", fmt.Sprintf("must be one of %s", strings.Join(cdnrepo.Arches, ", ")), params.Arch)
	}
	if params.Variants == nil {
		errs.Add("variants", "is required")
	}

	if params.ContentType == cdnrepo.ContentTypeDocker {
		if params.Arch != cdnrepo.ArchMulti {
			errs.Add("arch", `must be "multi" for Docker repos`, params.Arch)
		}
		if params.UseForTPS {
			errs.Add("use_for_tps", `do not set "use_for_tps" for Docker repos`)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
