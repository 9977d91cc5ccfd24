package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsOutOfRange is the sentinel error for values outside allowed bounds.
var ErrValueIsOutOfRange = errors.New("value is invalid")

// ValueIsOutOfRangeError indicates that a value falls outside its allowed range.
type ValueIsOutOfRangeError struct {
	// ParamName identifies the out-of-range value.
	ParamName string
	// Value is the offending value.
	Value any
	// Min is the lower bound of the allowed range.
	Min any
	// Max is the upper bound of the allowed range.
	Max any
	// Cause is the underlying error, if any.
	Cause error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel error to support errors.Is checks.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}
