package commands

import (
	"errors"

	"docdispatch/internal/pkg/guard"
)

var ErrDispatchPendingOrdersCommandIsNotConstructed = errors.New(
	"DispatchPendingOrdersCommand must be created via NewDispatchPendingOrdersCommand constructor",
)

// DispatchPendingOrdersCommand triggers a dispatch pass over every unassigned
// order still in New status. The retry job and the operator dashboard both use
// it to pick up orders whose territory gained a delegate after the original
// dispatch failed.
type DispatchPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingOrdersCommand creates a command to run a batch dispatch pass.
func NewDispatchPendingOrdersCommand() DispatchPendingOrdersCommand {
	return DispatchPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingOrdersCommandIsNotConstructed)
}
