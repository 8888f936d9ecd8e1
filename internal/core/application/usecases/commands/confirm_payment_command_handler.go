package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/ports"
	"docdispatch/internal/pkg/errs"
)

// ErrInvoiceNotPending is returned when confirming payment on an expired or
// cancelled invoice. An already paid invoice is not an error; it resolves to
// an AlreadyProcessed result instead.
var ErrInvoiceNotPending = invoice.ErrInvoiceNotPending

// ConfirmPaymentResult is the outcome of a payment confirmation.
type ConfirmPaymentResult struct {
	// OrderID is the order materialized from the invoice payload. On an
	// AlreadyProcessed outcome it is the id stored by the first confirmation.
	OrderID kernel.UUID

	// AlreadyProcessed marks a duplicate confirmation resolved idempotently.
	AlreadyProcessed bool

	// DelegateAssigned reports whether the follow-up dispatch bound a delegate.
	DelegateAssigned bool
}

// ConfirmPaymentCommandHandler orchestrates the payment-to-order conversion.
//
// Flow, in one transaction:
//   - Load the invoice; paid resolves to AlreadyProcessed with the stored
//     order id, expired/cancelled fail with ErrInvoiceNotPending
//   - Materialize the order from the invoice's embedded payload under a
//     deterministic id derived from the invoice id, and persist it before
//     the invoice is touched
//   - Stamp the invoice paid through the guarded pending-only write; losing
//     the guard means a concurrent confirmation won, resolved by re-reading
//     the invoice
//
// After commit the handler dispatches the order and fires notifications;
// neither a failed dispatch nor a failed notification fails the confirmation.
type ConfirmPaymentCommandHandler struct {
	uowFactory      PaymentUoWFactory
	dispatchHandler AssignDelegateCommandHandler
	notifier        ports.Notifier
	logger          *slog.Logger
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	dispatchUoWFactory DispatchUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory:      uowFactory,
		dispatchHandler: NewAssignDelegateCommandHandler(dispatchUoWFactory, notifier, logger),
		notifier:        notifier,
		logger:          logger,
	}
}

// Handle processes the payment confirmation command.
func (h ConfirmPaymentCommandHandler) Handle(
	ctx context.Context, cmd ConfirmPaymentCommand,
) (ConfirmPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmPaymentResult{}, err
	}

	result, inv, err := h.convert(ctx, cmd)
	if err != nil || result.AlreadyProcessed {
		return result, err
	}

	h.notify(ctx, ports.Notification{
		Event:       ports.EventOrderConfirmed,
		OrderID:     result.OrderID,
		RecipientID: inv.OwnerID(),
		Message:     fmt.Sprintf("payment confirmed for invoice %s", inv.Reference()),
	})

	dispatchCmd, err := NewAssignDelegateCommand(result.OrderID)
	if err != nil {
		return result, nil
	}

	dispatchResult, err := h.dispatchHandler.Handle(ctx, dispatchCmd)
	if err != nil {
		h.logger.Error("dispatch after payment confirmation failed",
			"order_id", result.OrderID.String(), "error", err)
		return result, nil
	}

	result.DelegateAssigned = dispatchResult.Outcome == DispatchAssigned ||
		dispatchResult.Outcome == DispatchAlreadyAssigned

	return result, nil
}

// convert runs the transactional part: order materialization plus the guarded
// invoice write.
func (h ConfirmPaymentCommandHandler) convert(
	ctx context.Context, cmd ConfirmPaymentCommand,
) (ConfirmPaymentResult, *invoice.Invoice, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPaymentResult{}, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	orderRepo := uow.OrderRepository()

	inv, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return ConfirmPaymentResult{}, nil, err
	}

	if inv.Status() == invoice.StatusPaid {
		return alreadyProcessedResult(inv)
	}
	if inv.Status() != invoice.StatusPending {
		return ConfirmPaymentResult{}, nil, ErrInvoiceNotPending
	}

	// The order id is a pure function of the invoice id, so a crash between
	// the order insert and the invoice write replays into the same order on
	// the next webhook delivery.
	orderID := kernel.DerivedUUID(inv.ID(), "order")

	ord, err := inv.Payload().MaterializeOrder(orderID, inv.OwnerID())
	if err != nil {
		return ConfirmPaymentResult{}, nil, err
	}

	if err = orderRepo.Add(ctx, ord); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
		return ConfirmPaymentResult{}, nil, err
	}

	won, err := invoiceRepo.MarkPaid(ctx, inv.ID(), orderID, time.Now().UTC())
	if err != nil {
		return ConfirmPaymentResult{}, nil, err
	}

	if !won {
		// A concurrent confirmation got there first; re-read for its verdict.
		inv, err = invoiceRepo.Get(ctx, cmd.InvoiceID())
		if err != nil {
			return ConfirmPaymentResult{}, nil, err
		}
		if inv.Status() != invoice.StatusPaid {
			return ConfirmPaymentResult{}, nil, ErrInvoiceNotPending
		}
		if err = uow.Commit(ctx); err != nil {
			return ConfirmPaymentResult{}, nil, err
		}
		return alreadyProcessedResult(inv)
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPaymentResult{}, nil, err
	}

	return ConfirmPaymentResult{OrderID: orderID}, inv, nil
}

func alreadyProcessedResult(inv *invoice.Invoice) (ConfirmPaymentResult, *invoice.Invoice, error) {
	if inv.OrderID() == nil {
		return ConfirmPaymentResult{}, nil, errs.NewValueIsInvalidError(
			"paid invoice has no order id")
	}
	return ConfirmPaymentResult{
		OrderID:          *inv.OrderID(),
		AlreadyProcessed: true,
	}, inv, nil
}

func (h ConfirmPaymentCommandHandler) notify(ctx context.Context, n ports.Notification) {
	if err := h.notifier.Notify(ctx, n); err != nil {
		h.logger.Error("notification delivery failed",
			"event", string(n.Event), "order_id", n.OrderID.String(), "error", err)
	}
}
