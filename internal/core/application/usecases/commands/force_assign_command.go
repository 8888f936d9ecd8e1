package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrForceAssignCommandIsNotConstructed = errors.New(
	"ForceAssignCommand must be created via NewForceAssignCommand constructor",
)

// ForceAssignCommand is the administrative override for assignment: it binds
// a chosen delegate regardless of the directory match and may replace the
// delegate of an already assigned order. Every use is logged as an override.
type ForceAssignCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	delegateID kernel.UUID
	adminID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewForceAssignCommand creates an override command binding the given delegate.
func NewForceAssignCommand(orderID, delegateID, adminID kernel.UUID) (ForceAssignCommand, error) {
	if err := errors.Join(
		orderID.Validate(), delegateID.Validate(), adminID.Validate(),
	); err != nil {
		return ForceAssignCommand{}, err
	}

	return ForceAssignCommand{
		orderID:    orderID,
		delegateID: delegateID,
		adminID:    adminID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ForceAssignCommand) Validate() error {
	return c.guard.Validate(ErrForceAssignCommandIsNotConstructed)
}

// OrderID returns the order being overridden.
func (c ForceAssignCommand) OrderID() kernel.UUID { return c.orderID }

// DelegateID returns the delegate chosen by the administrator.
func (c ForceAssignCommand) DelegateID() kernel.UUID { return c.delegateID }

// AdminID returns the administrator performing the override.
func (c ForceAssignCommand) AdminID() kernel.UUID { return c.adminID }
