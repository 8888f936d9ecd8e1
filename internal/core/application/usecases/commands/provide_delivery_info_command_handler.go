package commands

import (
	"context"

	"docdispatch/internal/core/domain/model/order"
)

// ProvideDeliveryInfoCommandHandler attaches delivery details to an order.
// Permitted while the order is assigned or in progress; the MarkReady gate
// refuses orders that never got their details.
type ProvideDeliveryInfoCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProvideDeliveryInfoCommandHandler creates a handler for delivery-info operations.
func NewProvideDeliveryInfoCommandHandler(uowFactory OrderUoWFactory) ProvideDeliveryInfoCommandHandler {
	return ProvideDeliveryInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery-info command.
func (h *ProvideDeliveryInfoCommandHandler) Handle(
	ctx context.Context, cmd ProvideDeliveryInfoCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	info, err := order.NewDeliveryInfo(
		cmd.RecipientName(), cmd.RecipientPhone(), cmd.Address(), cmd.DeliveryCode())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = ord.SetDeliveryInfo(info); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
