package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand declares the document procured and ready to ship.
// Only the assigned delegate may mark ready, and only once delivery details
// exist on the order.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	delegateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command for the delegate to mark an order ready.
func NewMarkReadyCommand(orderID, delegateID kernel.UUID) (MarkReadyCommand, error) {
	if err := errors.Join(orderID.Validate(), delegateID.Validate()); err != nil {
		return MarkReadyCommand{}, err
	}

	return MarkReadyCommand{
		orderID:    orderID,
		delegateID: delegateID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the order to mark ready.
func (c MarkReadyCommand) OrderID() kernel.UUID { return c.orderID }

// DelegateID returns the acting delegate.
func (c MarkReadyCommand) DelegateID() kernel.UUID { return c.delegateID }
