package commands

import (
	"context"
)

// AssignCourierCommandHandler binds a courier to an order for the final leg.
// Permitted from Ready onward until delivery.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier binding operations.
func NewAssignCourierCommandHandler(uowFactory OrderUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier binding command.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	if err = ord.AssignCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
