package commands

import (
	"context"
	"log/slog"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/ports"
)

// DispatchPendingOrdersCommandHandler runs one dispatch attempt per pending
// order. Each order is dispatched in its own transaction through the single
// dispatch handler, so one failing order never poisons the rest of the pass.
type DispatchPendingOrdersCommandHandler struct {
	uowFactory      DispatchUoWFactory
	dispatchHandler AssignDelegateCommandHandler
	logger          *slog.Logger
}

// NewDispatchPendingOrdersCommandHandler creates a handler for batch dispatch passes.
func NewDispatchPendingOrdersCommandHandler(
	uowFactory DispatchUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) DispatchPendingOrdersCommandHandler {
	return DispatchPendingOrdersCommandHandler{
		uowFactory:      uowFactory,
		dispatchHandler: NewAssignDelegateCommandHandler(uowFactory, notifier, logger),
		logger:          logger,
	}
}

// Handle lists unassigned orders, dispatches each, and returns the per-order
// result map. An error return means the pass could not even enumerate orders;
// per-order failures are logged and recorded as absent map entries.
func (h DispatchPendingOrdersCommandHandler) Handle(
	ctx context.Context, cmd DispatchPendingOrdersCommand,
) (map[kernel.UUID]AssignDelegateResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	pending, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil {
		h.logger.Error("rollback after pending-order listing failed", "error", rollbackErr)
	}
	if err != nil {
		return nil, err
	}

	results := make(map[kernel.UUID]AssignDelegateResult, len(pending))
	for _, ord := range pending {
		dispatchCmd, err := NewAssignDelegateCommand(ord.ID())
		if err != nil {
			h.logger.Error("skipping order in dispatch pass", "order_id", ord.ID().String(), "error", err)
			continue
		}

		result, err := h.dispatchHandler.Handle(ctx, dispatchCmd)
		if err != nil {
			h.logger.Error("dispatch attempt failed", "order_id", ord.ID().String(), "error", err)
			continue
		}

		results[ord.ID()] = result
	}

	return results, nil
}
