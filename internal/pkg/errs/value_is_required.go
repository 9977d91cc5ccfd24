package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsRequired is the sentinel error for missing required values.
// Use errors.Is with this sentinel to detect the error class.
var ErrValueIsRequired = errors.New("value is required")

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	// ParamName identifies the missing value.
	ParamName string
	// Cause is the underlying error, if any.
	Cause error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

// Unwrap returns the sentinel error to support errors.Is checks.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
