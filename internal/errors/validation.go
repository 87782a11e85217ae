package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects per-field validation failures
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface. Fields are listed in name order so
// messages are stable.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// AddFieldError records a failure for field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any field failed
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts to an InvalidArgument *Error, nil when nothing failed
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field failures fluently
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

// Field adds a failure for field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf adds a formatted failure for field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a "is required" failure
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns an InvalidArgument error if anything failed, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// ValidateRequired fails blank strings
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange fails values outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateMin fails values below minValue
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}
