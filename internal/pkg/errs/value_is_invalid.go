package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValueIsInvalid is the sentinel error for invalid values.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	// ParamName identifies the invalid value.
	ParamName string
	// Cause is the underlying error, if any.
	Cause error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

// Unwrap returns the sentinel error to support errors.Is checks.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// sanitize collapses newlines so formatted values cannot break log lines.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
