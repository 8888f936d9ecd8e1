package commands

import (
	"errors"
	"time"

	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

var ErrExpireInvoicesCommandIsNotConstructed = errors.New(
	"ExpireInvoicesCommand must be created via NewExpireInvoicesCommand constructor",
)

// ExpireInvoicesCommand closes the payment window of every invoice still
// pending past the cutoff. Orders are never created for expired invoices.
type ExpireInvoicesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireInvoicesCommand creates a command expiring invoices created before
// the cutoff.
func NewExpireInvoicesCommand(cutoff time.Time) (ExpireInvoicesCommand, error) {
	if cutoff.IsZero() {
		return ExpireInvoicesCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ExpireInvoicesCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrExpireInvoicesCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold.
func (c ExpireInvoicesCommand) Cutoff() time.Time { return c.cutoff }
