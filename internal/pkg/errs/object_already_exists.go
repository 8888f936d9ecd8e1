package errs

import (
	"errors"
	"fmt"
)

// ErrObjectAlreadyExists is the sentinel error for all ObjectAlreadyExistsError instances.
// Use errors.Is(err, ErrObjectAlreadyExists) to classify uniqueness conflicts.
var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError indicates that persisting an object collided with an
// existing one on a unique key. It carries the parameter name that collided,
// the conflicting identifier value, and an optional underlying cause.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without an underlying cause.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the error message. The short form is used when no cause is present;
// the long form includes the parameter name and the cause.
func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID)
}

// Unwrap returns the sentinel ErrObjectAlreadyExists so errors.Is matches.
func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
