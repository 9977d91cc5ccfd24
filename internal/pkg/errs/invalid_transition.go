package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel error for lifecycle operations invoked
// while their phase precondition does not hold.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError indicates that a phase-changing operation was invoked
// from a phase that does not allow it. The operation must leave state untouched.
// Rejections originate in the state machine itself, so there is never an
// underlying cause to wrap.
type InvalidTransitionError struct {
	// Event names the attempted operation (e.g. "markArrived").
	Event string
	// From names the phase the operation was attempted from.
	From string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given event and phase.
func NewInvalidTransitionError(event string, from string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Event: event,
		From:  from,
	}
}

// Error formats the error message.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, sanitize(e.Event), sanitize(e.From))
}

// Unwrap returns the sentinel error to support errors.Is checks.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
