package errs

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolation is the sentinel error for operations invoked while
// a non-phase precondition does not hold (e.g. selecting while an order is active).
var ErrPreconditionViolation = errors.New("precondition violated")

// PreconditionViolationError indicates that an operation was rejected because
// its precondition does not hold. The operation must leave state untouched.
// Rejections originate in the state machine itself, so there is never an
// underlying cause to wrap.
type PreconditionViolationError struct {
	// ParamName describes the violated precondition.
	ParamName string
}

// NewPreconditionViolationError creates a PreconditionViolationError for the named precondition.
func NewPreconditionViolationError(paramName string) *PreconditionViolationError {
	return &PreconditionViolationError{
		ParamName: paramName,
	}
}

// Error formats the error message.
func (e *PreconditionViolationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPreconditionViolation, sanitize(e.ParamName))
}

// Unwrap returns the sentinel error to support errors.Is checks.
func (e *PreconditionViolationError) Unwrap() error {
	return ErrPreconditionViolation
}
