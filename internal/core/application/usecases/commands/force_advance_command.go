package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/pkg/guard"
)

var ErrForceAdvanceCommandIsNotConstructed = errors.New(
	"ForceAdvanceCommand must be created via NewForceAdvanceCommand constructor",
)

// ForceAdvanceCommand is the administrative override for status: it pushes an
// order forward to the given status without actor checks or gate checks.
// Forward-only; the delegate consistency invariant still holds.
type ForceAdvanceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	to      order.Status
	adminID kernel.UUID

	guard guard.ConstructorGuard
}

// NewForceAdvanceCommand creates an override command advancing to the given status.
func NewForceAdvanceCommand(
	orderID kernel.UUID, to order.Status, adminID kernel.UUID,
) (ForceAdvanceCommand, error) {
	if err := errors.Join(
		orderID.Validate(), to.Validate(), adminID.Validate(),
	); err != nil {
		return ForceAdvanceCommand{}, err
	}

	return ForceAdvanceCommand{
		orderID: orderID,
		to:      to,
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ForceAdvanceCommand) Validate() error {
	return c.guard.Validate(ErrForceAdvanceCommandIsNotConstructed)
}

// OrderID returns the order being overridden.
func (c ForceAdvanceCommand) OrderID() kernel.UUID { return c.orderID }

// To returns the target status.
func (c ForceAdvanceCommand) To() order.Status { return c.to }

// AdminID returns the administrator performing the override.
func (c ForceAdvanceCommand) AdminID() kernel.UUID { return c.adminID }
