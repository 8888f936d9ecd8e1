package commands

import (
	"context"
	"log/slog"
)

// ForceAdvanceCommandHandler executes the status override.
type ForceAdvanceCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewForceAdvanceCommandHandler creates a handler for status overrides.
func NewForceAdvanceCommandHandler(
	uowFactory OrderUoWFactory, logger *slog.Logger,
) ForceAdvanceCommandHandler {
	return ForceAdvanceCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the override command.
func (h ForceAdvanceCommandHandler) Handle(ctx context.Context, cmd ForceAdvanceCommand) error {
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

	from := ord.Status()
	if err = ord.ForceAdvance(cmd.To()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Warn("order status overridden",
		"override", true,
		"order_id", ord.ID().String(),
		"from", from.String(),
		"to", cmd.To().String(),
		"admin_id", cmd.AdminID().String(),
	)

	return nil
}
