package commands

import (
	"context"
)

// ConfirmDeliveryCommandHandler handles the Shipped/InTransit -> Delivered
// transition. The aggregate enforces courier authorization and the delivery
// code match; a mismatch leaves the order untouched.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if err = ord.ConfirmDelivery(cmd.CourierID(), cmd.DeliveryCode()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
