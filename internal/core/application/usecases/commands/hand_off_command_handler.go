package commands

import (
	"context"
)

// HandOffCommandHandler handles the Shipped -> InTransit transition.
// Only the bound courier may take over the shipment.
type HandOffCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHandOffCommandHandler creates a handler for hand-off operations.
func NewHandOffCommandHandler(uowFactory OrderUoWFactory) HandOffCommandHandler {
	return HandOffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hand-off command.
func (h *HandOffCommandHandler) Handle(ctx context.Context, cmd HandOffCommand) error {
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

	if err = ord.HandOff(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
