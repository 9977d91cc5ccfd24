package errs

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the sentinel error for lookups that yield no object.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError indicates that an object could not be found by its identifier.
type ObjectNotFoundError struct {
	// ParamName identifies the lookup parameter (e.g. "orderId").
	ParamName string
	// ID is the identifier that was looked up.
	ID any
	// Cause is the underlying error, if any.
	Cause error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the error message. The short form carries only the ID; the
// form with a cause also names the lookup parameter.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

// Unwrap returns the sentinel error to support errors.Is checks.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
