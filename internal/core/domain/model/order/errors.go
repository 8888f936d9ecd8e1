package order

import (
	"errors"
	"fmt"
)

// Domain errors for order lifecycle operations.
var (
	// ErrInvalidTransition is the sentinel for every refused status transition,
	// whether the refusal comes from the state machine ordering or from actor
	// authorization. The aggregate is left unchanged when it is returned.
	ErrInvalidTransition = errors.New("invalid order transition")

	// ErrUnauthorizedActor is returned when a transition is attempted by an actor
	// other than the one the transition is reserved for. It unwraps to
	// ErrInvalidTransition: callers that only classify get the broad category,
	// callers that report to users get the precise reason.
	ErrUnauthorizedActor = fmt.Errorf("%w: actor is not authorized", ErrInvalidTransition)

	// ErrMissingDeliveryInfo is returned when marking an order ready before the
	// recipient and delivery details have been supplied.
	ErrMissingDeliveryInfo = errors.New("delivery information is missing")

	// ErrDeliveryCodeMismatch is returned when the confirmation code supplied by
	// the recipient does not match the code stored on the order. The transition
	// is refused without mutating the order and may be retried.
	ErrDeliveryCodeMismatch = errors.New("delivery code does not match")
)

// InvalidTransitionError reports a refused move between two statuses.
// It unwraps to ErrInvalidTransition for classification.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given move.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// Error formats the refused transition.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrInvalidTransition so errors.Is matches.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
