package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrProvideDeliveryInfoCommandIsNotConstructed = errors.New(
	"ProvideDeliveryInfoCommand must be created via NewProvideDeliveryInfoCommand constructor",
)

// ProvideDeliveryInfoCommand records who receives the document and where,
// plus the 4-digit code that later gates delivery confirmation. Without it
// the order cannot be marked ready.
type ProvideDeliveryInfoCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	recipientName  string
	recipientPhone string
	address        string
	deliveryCode   string

	guard guard.ConstructorGuard
}

// NewProvideDeliveryInfoCommand creates a command carrying the delivery details.
// Field-level validation (required name and address, 4-digit code) happens in
// the handler when the DeliveryInfo value object is built.
func NewProvideDeliveryInfoCommand(
	orderID kernel.UUID,
	recipientName, recipientPhone, address, deliveryCode string,
) (ProvideDeliveryInfoCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProvideDeliveryInfoCommand{}, err
	}

	return ProvideDeliveryInfoCommand{
		orderID:        orderID,
		recipientName:  recipientName,
		recipientPhone: recipientPhone,
		address:        address,
		deliveryCode:   deliveryCode,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvideDeliveryInfoCommand) Validate() error {
	return c.guard.Validate(ErrProvideDeliveryInfoCommandIsNotConstructed)
}

// OrderID returns the order the details belong to.
func (c ProvideDeliveryInfoCommand) OrderID() kernel.UUID { return c.orderID }

// RecipientName returns who receives the document.
func (c ProvideDeliveryInfoCommand) RecipientName() string { return c.recipientName }

// RecipientPhone returns the recipient's phone, may be empty.
func (c ProvideDeliveryInfoCommand) RecipientPhone() string { return c.recipientPhone }

// Address returns the delivery address.
func (c ProvideDeliveryInfoCommand) Address() string { return c.address }

// DeliveryCode returns the 4-digit confirmation code.
func (c ProvideDeliveryInfoCommand) DeliveryCode() string { return c.deliveryCode }
