package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrStartProcessingCommandIsNotConstructed = errors.New(
	"StartProcessingCommand must be created via NewStartProcessingCommand constructor",
)

// StartProcessingCommand moves an assigned order into active procurement.
// Only the assigned delegate may start processing.
type StartProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	delegateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingCommand creates a command for the delegate to start an order.
func NewStartProcessingCommand(orderID, delegateID kernel.UUID) (StartProcessingCommand, error) {
	if err := errors.Join(orderID.Validate(), delegateID.Validate()); err != nil {
		return StartProcessingCommand{}, err
	}

	return StartProcessingCommand{
		orderID:    orderID,
		delegateID: delegateID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingCommandIsNotConstructed)
}

// OrderID returns the order to start.
func (c StartProcessingCommand) OrderID() kernel.UUID { return c.orderID }

// DelegateID returns the acting delegate.
func (c StartProcessingCommand) DelegateID() kernel.UUID { return c.delegateID }
