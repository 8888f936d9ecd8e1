package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand closes an order after delivery: terminal bookkeeping
// that credits the delegate's counters with the computed payout. Completing
// an already completed order is a no-op.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to close a delivered order.
func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
