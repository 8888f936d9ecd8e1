package invoice

import (
	"errors"
	"fmt"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

// ErrPayloadIsNotConstructed is returned when using an improperly initialized OrderPayload.
var ErrPayloadIsNotConstructed = errors.New(
	"OrderPayload must be created via NewOrderPayload constructor")

// OrderPayload is the order-creation payload embedded in an invoice at
// invoice-creation time. It captures everything needed to rebuild the order
// later — document type, routing, copies, and the full billing breakdown — so
// the converter never re-derives prices at payment time.
//
// OrderPayload is an immutable value object; use NewOrderPayload.
type OrderPayload struct { //nolint:recvcheck //using for validation
	documentType   string
	service        kernel.ServiceCategory
	city           kernel.City
	copies         int
	totalAmount    int64
	delegatePayout int64
	billing        order.BillingBreakdown

	guard guard.ConstructorGuard
}

// NewOrderPayload creates a validated order-creation payload.
// delegatePayout is the stored flat payout fallback for orders without
// itemized document lines.
func NewOrderPayload(
	documentType string,
	service kernel.ServiceCategory,
	city kernel.City,
	copies int,
	totalAmount int64,
	delegatePayout int64,
	billing order.BillingBreakdown,
) (OrderPayload, error) {
	if documentType == "" {
		return OrderPayload{}, errs.NewValueIsRequiredError("document type")
	}
	if copies <= 0 {
		return OrderPayload{}, errs.NewValueIsInvalidErrorWithCause("copies is invalid",
			fmt.Errorf("%d is not greater than 0", copies))
	}
	if totalAmount < 0 {
		return OrderPayload{}, errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("%d is negative", totalAmount))
	}
	if delegatePayout < 0 {
		return OrderPayload{}, errs.NewValueIsInvalidErrorWithCause("delegate payout is invalid",
			fmt.Errorf("%d is negative", delegatePayout))
	}

	if err := errors.Join(service.Validate(), city.Validate(), billing.Validate()); err != nil {
		return OrderPayload{}, err
	}

	return OrderPayload{
		documentType:   documentType,
		service:        service,
		city:           city,
		copies:         copies,
		totalAmount:    totalAmount,
		delegatePayout: delegatePayout,
		billing:        billing,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// DocumentType returns the administrative document being procured.
func (p OrderPayload) DocumentType() string {
	return p.documentType
}

// Service returns the administrative body type the order is routed through.
func (p OrderPayload) Service() kernel.ServiceCategory {
	return p.service
}

// City returns the dispatch territory.
func (p OrderPayload) City() kernel.City {
	return p.city
}

// Copies returns the number of document copies ordered.
func (p OrderPayload) Copies() int {
	return p.copies
}

// TotalAmount returns the amount owed by the owner.
func (p OrderPayload) TotalAmount() int64 {
	return p.totalAmount
}

// DelegatePayout returns the stored flat payout fallback.
func (p OrderPayload) DelegatePayout() int64 {
	return p.delegatePayout
}

// Billing returns the captured billing breakdown.
func (p OrderPayload) Billing() order.BillingBreakdown {
	return p.billing
}

// MaterializeOrder builds the Order this payload describes.
// The converter calls it with the deterministic order ID derived from the
// invoice, so retried confirmations rebuild the identical order.
func (p OrderPayload) MaterializeOrder(orderID, ownerID kernel.UUID) (*order.Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return order.NewOrder(
		orderID,
		ownerID,
		p.documentType,
		p.service,
		p.city,
		p.copies,
		p.totalAmount,
		p.delegatePayout,
		p.billing,
	)
}

// Validate ensures the payload was created through NewOrderPayload.
func (p OrderPayload) Validate() error {
	return p.guard.Validate(ErrPayloadIsNotConstructed)
}
