package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrHandOffCommandIsNotConstructed = errors.New(
	"HandOffCommand must be created via NewHandOffCommand constructor",
)

// HandOffCommand records the courier picking the shipment up: the optional
// Shipped -> InTransit hop for territories with a hand-delivery leg.
type HandOffCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHandOffCommand creates a command for the courier to take over a shipment.
func NewHandOffCommand(orderID, courierID kernel.UUID) (HandOffCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return HandOffCommand{}, err
	}

	return HandOffCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c HandOffCommand) Validate() error {
	return c.guard.Validate(ErrHandOffCommandIsNotConstructed)
}

// OrderID returns the order being handed off.
func (c HandOffCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the acting courier.
func (c HandOffCommand) CourierID() kernel.UUID { return c.courierID }
