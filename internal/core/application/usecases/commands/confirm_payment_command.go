package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand converts a paid invoice into an order: the
// payment-to-order conversion at the heart of the request lifecycle.
//
// The conversion is exactly-once per invoice. Re-confirming an invoice that
// was already processed is a success-shaped outcome carrying the order id
// created the first time.
//
// Example:
//
//	cmd, _ := NewConfirmPaymentCommand(invoiceID)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && result.AlreadyProcessed {
//	    log.Printf("duplicate webhook for order %s", result.OrderID)
//	}
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm payment of the given invoice.
func NewConfirmPaymentCommand(invoiceID kernel.UUID) (ConfirmPaymentCommand, error) {
	if err := invoiceID.Validate(); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// InvoiceID returns the invoice whose payment is being confirmed.
func (c ConfirmPaymentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}
