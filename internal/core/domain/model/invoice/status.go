package invoice

import (
	"fmt"

	"docdispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
// An invoice is the pre-payment record of a would-be order; it is terminal on
// paid, expired, or cancelled, and exactly one order is ever created per
// invoice, exactly when it transitions pending -> paid.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	          ├──> Expired
//	          └──> Cancelled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the owner submitted an order request
	// and has not paid yet. This is the "pending_payment" phase of the order
	// lifecycle; no Order exists yet.
	StatusPending

	// StatusPaid indicates payment was confirmed and the order was materialized.
	StatusPaid

	// StatusExpired indicates the payment window lapsed before confirmation.
	StatusExpired

	// StatusCancelled indicates the owner or an operator abandoned the invoice.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusPaid:      "paid",
		StatusExpired:   "expired",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusPaid:      "paid",
		StatusExpired:   "expired",
		StatusCancelled: "cancelled",
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("invoice status is invalid",
		fmt.Errorf("%q is not a valid invoice status", v))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("invoice status is invalid",
			fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

// String returns the persisted name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
