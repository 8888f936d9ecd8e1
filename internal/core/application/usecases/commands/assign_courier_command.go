package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand binds the courier who carries the shipped document on
// its last leg. The courier is the only actor allowed to hand off and to
// confirm delivery.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to bind a courier to an order.
func NewAssignCourierCommand(orderID, courierID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order getting a courier.
func (c AssignCourierCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the courier to bind.
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }
