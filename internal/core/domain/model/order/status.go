package order

import (
	"fmt"

	"docdispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly forward state machine: no transition ever moves an
// order back toward an earlier state, and every transition stamps exactly one
// timestamp on the aggregate.
//
// State transitions:
//
//	New ──> Assigned ──> InProgress ──> Ready ──> Shipped ──┬──> Delivered ──> Completed
//	 │                                                      │         ▲
//	 └──> Cancelled                                         └──> InTransit
//
// Shipped reaches Delivered either directly (pickup by the recipient) or through
// InTransit (courier hand-off); both are first-class forward paths.
//
// Status is a value object that validates state transitions and provides string
// representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when an order is materialized from a paid
	// invoice. Orders in this status are waiting to be assigned to a delegate.
	StatusNew

	// StatusAssigned indicates the order has been bound to its delegate.
	StatusAssigned

	// StatusInProgress indicates the delegate has started working the documents.
	StatusInProgress

	// StatusReady indicates the documents are ready to be shipped.
	StatusReady

	// StatusShipped indicates the documents left the delegate's hands.
	StatusShipped

	// StatusInTransit indicates a courier took over a shipped order.
	StatusInTransit

	// StatusDelivered indicates the recipient confirmed receipt.
	StatusDelivered

	// StatusCompleted indicates terminal bookkeeping is done.
	// This is a final state with no further transitions allowed.
	StatusCompleted

	// StatusCancelled is the terminal state for orders abandoned before fulfillment
	// started. It is reachable from StatusNew only.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusNew:        "new",
		StatusAssigned:   "assigned",
		StatusInProgress: "in_progress",
		StatusReady:      "ready",
		StatusShipped:    "shipped",
		StatusInTransit:  "in_transit",
		StatusDelivered:  "delivered",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:        "new",
		StatusAssigned:   "assigned",
		StatusInProgress: "in_progress",
		StatusReady:      "ready",
		StatusShipped:    "shipped",
		StatusInTransit:  "in_transit",
		StatusDelivered:  "delivered",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses a persisted status name.
// Returns an error for any string outside the closed enumeration.
func StatusFromString(v string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == v {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", v))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// RequiresDelegate reports whether orders in this status must carry a delegate
// reference. These are exactly the statuses downstream of assignment; StatusNew
// and StatusCancelled must have none.
func (s Status) RequiresDelegate() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusReady,
		StatusShipped, StatusInTransit, StatusDelivered, StatusCompleted:
		return true
	default:
		return false
	}
}

// ValidateCanHaveDelegate validates the consistency between order status and
// delegate assignment: a delegate reference is present iff the status is
// downstream of assignment.
func (s Status) ValidateCanHaveDelegate(hasDelegate bool) error {
	if hasDelegate != s.RequiresDelegate() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have delegate=%t", s, hasDelegate))
	}
	return nil
}

// rank orders the forward statuses for the strictly-forward invariant.
// StatusCancelled is excluded: it is not part of the forward chain.
func (s Status) rank() int {
	ranks := map[Status]int{
		StatusNew:        1,
		StatusAssigned:   2,
		StatusInProgress: 3,
		StatusReady:      4,
		StatusShipped:    5,
		StatusInTransit:  6,
		StatusDelivered:  7,
		StatusCompleted:  8,
	}
	return ranks[s]
}

// IsForwardOf reports whether moving from prev to s goes strictly forward
// through the state machine. Used by the administrative force-advance path,
// which bypasses actor authorization but never the forward-only rule.
func (s Status) IsForwardOf(prev Status) bool {
	return prev.rank() > 0 && s.rank() > prev.rank()
}

// Assign transitions the status to StatusAssigned.
// Valid only from StatusNew; dispatch binds each order to its delegate once.
func (s Status) Assign() (Status, error) {
	if s != StatusNew {
		return 0, NewInvalidTransitionError(s, StatusAssigned)
	}
	return StatusAssigned, nil
}

// Start transitions the status to StatusInProgress.
// Valid only from StatusAssigned.
func (s Status) Start() (Status, error) {
	if s != StatusAssigned {
		return 0, NewInvalidTransitionError(s, StatusInProgress)
	}
	return StatusInProgress, nil
}

// Ready transitions the status to StatusReady.
// Valid only from StatusInProgress. The delivery-information gate lives on the
// Order aggregate, not here: the state machine only knows about ordering.
func (s Status) Ready() (Status, error) {
	if s != StatusInProgress {
		return 0, NewInvalidTransitionError(s, StatusReady)
	}
	return StatusReady, nil
}

// Ship transitions the status to StatusShipped.
// Valid only from StatusReady.
func (s Status) Ship() (Status, error) {
	if s != StatusReady {
		return 0, NewInvalidTransitionError(s, StatusShipped)
	}
	return StatusShipped, nil
}

// HandOff transitions the status to StatusInTransit.
// Valid only from StatusShipped; used when a courier takes over the physical
// delivery instead of the recipient picking the shipment up directly.
func (s Status) HandOff() (Status, error) {
	if s != StatusShipped {
		return 0, NewInvalidTransitionError(s, StatusInTransit)
	}
	return StatusInTransit, nil
}

// Deliver transitions the status to StatusDelivered.
// Valid from StatusShipped (direct pickup) and StatusInTransit (courier hand-off);
// both paths converge here.
func (s Status) Deliver() (Status, error) {
	if s != StatusShipped && s != StatusInTransit {
		return 0, NewInvalidTransitionError(s, StatusDelivered)
	}
	return StatusDelivered, nil
}

// Complete transitions the status to StatusCompleted.
// Valid from StatusDelivered. Completing an already completed order is an
// idempotent no-op: the same StatusCompleted is returned without error.
func (s Status) Complete() (Status, error) {
	if s == StatusCompleted {
		return StatusCompleted, nil
	}
	if s != StatusDelivered {
		return 0, NewInvalidTransitionError(s, StatusCompleted)
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to StatusCancelled.
// Valid only from StatusNew: once a delegate is working an order there is no
// rollback path.
func (s Status) Cancel() (Status, error) {
	if s != StatusNew {
		return 0, NewInvalidTransitionError(s, StatusCancelled)
	}
	return StatusCancelled, nil
}
