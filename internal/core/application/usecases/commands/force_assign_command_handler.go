package commands

import (
	"context"
	"log/slog"
)

// ForceAssignCommandHandler executes the assignment override.
// The chosen delegate is loaded to make sure it exists, but neither
// availability nor territory match is checked; the administrator asked for
// this binding explicitly.
type ForceAssignCommandHandler struct {
	uowFactory DispatchUoWFactory
	logger     *slog.Logger
}

// NewForceAssignCommandHandler creates a handler for assignment overrides.
func NewForceAssignCommandHandler(
	uowFactory DispatchUoWFactory, logger *slog.Logger,
) ForceAssignCommandHandler {
	return ForceAssignCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the override command.
func (h ForceAssignCommandHandler) Handle(ctx context.Context, cmd ForceAssignCommand) error {
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
	delegateRepo := uow.DelegateRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	chosen, err := delegateRepo.Get(ctx, cmd.DelegateID())
	if err != nil {
		return err
	}

	if err = ord.ForceAssign(chosen.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Warn("delegate assignment overridden",
		"override", true,
		"order_id", ord.ID().String(),
		"delegate_id", chosen.ID().String(),
		"admin_id", cmd.AdminID().String(),
	)

	return nil
}
