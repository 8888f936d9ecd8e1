package commands

import (
	"context"

	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/core/domain/services"
)

// CompleteOrderCommandHandler handles the Delivered -> Completed transition
// together with the delegate bookkeeping: the payout computed by the earnings
// calculator is credited to the delegate in the same transaction as the
// status write, so counters and statuses never drift apart.
type CompleteOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	calculator services.EarningsCalculator
}

// NewCompleteOrderCommandHandler creates a handler for order completion operations.
func NewCompleteOrderCommandHandler(uowFactory DispatchUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewEarningsCalculator(),
	}
}

// Handle processes the completion command.
// Completing a Completed order returns nil without touching anything.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if ord.Status() == order.StatusCompleted {
		return nil
	}

	if err = ord.Complete(); err != nil {
		return err
	}

	payout, err := h.calculator.Calculate(ord)
	if err != nil {
		return err
	}

	assignedDelegate, err := delegateRepo.Get(ctx, *ord.Delegate())
	if err != nil {
		return err
	}

	if err = assignedDelegate.RecordCompletedOrder(payout); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = delegateRepo.Update(ctx, assignedDelegate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
