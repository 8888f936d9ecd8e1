package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrAssignDelegateCommandIsNotConstructed = errors.New(
	"AssignDelegateCommand must be created via NewAssignDelegateCommand constructor",
)

// AssignDelegateCommand triggers the dispatch engine for one order: look up
// the delegate registered for the order's (city, service) territory and bind
// it with the guarded assignment write.
//
// The operation is idempotent: re-dispatching an already assigned order is a
// success-shaped AlreadyAssigned outcome carrying the existing delegate id.
//
// Example:
//
//	cmd, _ := NewAssignDelegateCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && result.Outcome == DispatchNoDelegateAvailable {
//	    log.Println("territory has no coverage")
//	}
type AssignDelegateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDelegateCommand creates a command to dispatch the given order.
func NewAssignDelegateCommand(orderID kernel.UUID) (AssignDelegateCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDelegateCommand{}, err
	}

	return AssignDelegateCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDelegateCommand) Validate() error {
	return c.guard.Validate(ErrAssignDelegateCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c AssignDelegateCommand) OrderID() kernel.UUID {
	return c.orderID
}
