package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValueIsOutOfRange is the sentinel error for all ValueIsOutOfRangeError instances.
var ErrValueIsOutOfRange = errors.New("value is out of range")

// ValueIsOutOfRangeError indicates that a value lies outside its permitted bounds.
// Value, Min and Max are kept as any so the type works for all ordered value kinds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, min, max any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       min,
		Max:       max,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, min, max any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       min,
		Max:       max,
		Cause:     cause,
	}
}

// Error formats the error message. The offending value is sanitized so that
// multi-line input cannot break log lines.
func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel ErrValueIsOutOfRange so errors.Is matches.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// sanitize collapses newlines into spaces.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
