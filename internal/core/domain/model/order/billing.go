package order

import (
	"errors"
	"fmt"

	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

// ErrBillingIsNotConstructed is returned when using an improperly initialized BillingBreakdown.
var ErrBillingIsNotConstructed = errors.New(
	"BillingBreakdown must be created via NewBillingBreakdown constructor")

// DocumentLine is one itemized document position inside a billing breakdown:
// a unit price (in minor currency units) and the number of copies ordered.
type DocumentLine struct {
	UnitPrice int64
	Copies    int
}

// Validate checks the line's business constraints.
func (l DocumentLine) Validate() error {
	if l.UnitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is negative", l.UnitPrice))
	}
	if l.Copies <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("copies is invalid",
			fmt.Errorf("%d is not greater than 0", l.Copies))
	}
	return nil
}

// Total returns the line total: unit price times copies.
func (l DocumentLine) Total() int64 {
	return l.UnitPrice * int64(l.Copies)
}

// BillingBreakdown is the itemized pricing captured on an order: document lines,
// a flat service fee, and an optional shipping fee. All amounts are in minor
// currency units.
//
// A breakdown with zero document lines is valid: legacy orders carry only a
// stored flat delegate payout, and the earnings calculator falls back to it
// when no lines are present.
//
// BillingBreakdown is an immutable value object; use NewBillingBreakdown.
type BillingBreakdown struct { //nolint:recvcheck //using for validation
	documents   []DocumentLine
	serviceFee  int64
	shippingFee int64

	guard guard.ConstructorGuard
}

// NewBillingBreakdown creates a validated billing breakdown.
// shippingFee of 0 means no shipping fee was charged.
func NewBillingBreakdown(documents []DocumentLine, serviceFee, shippingFee int64) (BillingBreakdown, error) {
	if serviceFee < 0 {
		return BillingBreakdown{}, errs.NewValueIsInvalidErrorWithCause("service fee is invalid",
			fmt.Errorf("%d is negative", serviceFee))
	}
	if shippingFee < 0 {
		return BillingBreakdown{}, errs.NewValueIsInvalidErrorWithCause("shipping fee is invalid",
			fmt.Errorf("%d is negative", shippingFee))
	}

	for _, line := range documents {
		if err := line.Validate(); err != nil {
			return BillingBreakdown{}, err
		}
	}

	return BillingBreakdown{
		documents:   append([]DocumentLine(nil), documents...),
		serviceFee:  serviceFee,
		shippingFee: shippingFee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Documents returns a copy of the itemized document lines.
func (b BillingBreakdown) Documents() []DocumentLine {
	return append([]DocumentLine(nil), b.documents...)
}

// ServiceFee returns the flat service fee.
func (b BillingBreakdown) ServiceFee() int64 {
	return b.serviceFee
}

// ShippingFee returns the shipping fee, 0 when none was charged.
func (b BillingBreakdown) ShippingFee() int64 {
	return b.shippingFee
}

// HasDocumentLines reports whether the breakdown carries itemized lines.
// Breakdowns without lines make the earnings calculator fall back to the
// order's stored flat payout.
func (b BillingBreakdown) HasDocumentLines() bool {
	return len(b.documents) > 0
}

// Validate ensures the breakdown was created through NewBillingBreakdown.
func (b BillingBreakdown) Validate() error {
	return b.guard.Validate(ErrBillingIsNotConstructed)
}
