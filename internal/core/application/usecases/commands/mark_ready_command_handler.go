package commands

import (
	"context"
	"fmt"
	"log/slog"

	"docdispatch/internal/core/ports"
)

// MarkReadyCommandHandler handles the InProgress -> Ready transition and
// fires the DocumentReady notification to the owner.
type MarkReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewMarkReadyCommandHandler creates a handler for mark-ready operations.
func NewMarkReadyCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the mark-ready command.
// The aggregate refuses with order.ErrMissingDeliveryInfo when delivery
// details were never provided; the order stays in progress and the command
// can be retried after the details exist.
func (h MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.MarkReady(cmd.DelegateID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, ports.Notification{
		Event:       ports.EventDocumentReady,
		OrderID:     ord.ID(),
		RecipientID: ord.OwnerID(),
		Message:     fmt.Sprintf("document for order %s is ready to ship", ord.ID()),
	}); err != nil {
		h.logger.Error("notification delivery failed",
			"event", string(ports.EventDocumentReady), "order_id", ord.ID().String(), "error", err)
	}

	return nil
}
