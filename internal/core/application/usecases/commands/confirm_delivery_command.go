package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand closes the delivery leg: the courier presents the
// 4-digit code collected from the recipient. A wrong code refuses without
// changing the order, so the courier can retry.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	courierID    kernel.UUID
	deliveryCode string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command for the courier to confirm delivery.
func NewConfirmDeliveryCommand(
	orderID, courierID kernel.UUID, deliveryCode string,
) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID:      orderID,
		courierID:    courierID,
		deliveryCode: deliveryCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the acting courier.
func (c ConfirmDeliveryCommand) CourierID() kernel.UUID { return c.courierID }

// DeliveryCode returns the code presented by the recipient.
func (c ConfirmDeliveryCommand) DeliveryCode() string { return c.deliveryCode }
