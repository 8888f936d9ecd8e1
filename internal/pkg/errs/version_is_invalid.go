package errs

import (
	"errors"
	"fmt"
)

// ErrVersionIsInvalid is the sentinel error for all VersionIsInvalidError instances.
// It classifies optimistic-concurrency conflicts where a stored version no longer
// matches the version a caller read.
var ErrVersionIsInvalid = errors.New("version is invalid")

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error formats the error message, appending the cause when present.
func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

// Unwrap returns the sentinel ErrVersionIsInvalid so errors.Is matches.
func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
