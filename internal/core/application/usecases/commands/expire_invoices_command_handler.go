package commands

import (
	"context"
	"log/slog"
)

// ExpireInvoicesCommandHandler sweeps lapsed pending invoices.
// Each invoice is expired in the same transaction as the sweep, so a
// concurrent payment confirmation either lands before the sweep reads the
// row or finds it already expired.
type ExpireInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
	logger     *slog.Logger
}

// NewExpireInvoicesCommandHandler creates a handler for the expiry sweep.
func NewExpireInvoicesCommandHandler(
	uowFactory InvoiceUoWFactory, logger *slog.Logger,
) ExpireInvoicesCommandHandler {
	return ExpireInvoicesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle expires every pending invoice created before the cutoff and returns
// how many were closed.
func (h *ExpireInvoicesCommandHandler) Handle(
	ctx context.Context, cmd ExpireInvoicesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	invoices, err := invoiceRepo.GetAllExpiredPending(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, inv := range invoices {
		if err := inv.Expire(); err != nil {
			h.logger.Warn("skipping invoice no longer pending",
				"invoice_id", inv.ID().String(), "error", err)
			continue
		}

		if err := invoiceRepo.Update(ctx, inv); err != nil {
			return 0, err
		}
		expired++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
