package commands

import (
	"context"
)

// StartProcessingCommandHandler handles the Assigned -> InProgress transition.
// The aggregate enforces both the transition and delegate authorization; the
// handler re-reads current state inside the transaction before writing.
type StartProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartProcessingCommandHandler creates a handler for start-processing operations.
func NewStartProcessingCommandHandler(uowFactory OrderUoWFactory) StartProcessingCommandHandler {
	return StartProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-processing command.
func (h *StartProcessingCommandHandler) Handle(ctx context.Context, cmd StartProcessingCommand) error {
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

	if err = ord.StartProcessing(cmd.DelegateID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
