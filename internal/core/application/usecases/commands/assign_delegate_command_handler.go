package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/services"
	"docdispatch/internal/core/ports"
)

// DispatchOutcome classifies the result of one dispatch attempt.
type DispatchOutcome int

const (
	// DispatchAssigned means this attempt bound the delegate.
	DispatchAssigned DispatchOutcome = iota

	// DispatchAlreadyAssigned means the order already had a delegate, either
	// before the attempt or because a concurrent attempt won the guarded write.
	DispatchAlreadyAssigned

	// DispatchNoDelegateAvailable means no available delegate covers the
	// order's territory; the order stays in New status.
	DispatchNoDelegateAvailable
)

// AssignDelegateResult is the outcome of one dispatch attempt. DelegateID is
// set for Assigned and AlreadyAssigned outcomes and nil otherwise.
type AssignDelegateResult struct {
	Outcome    DispatchOutcome
	DelegateID *kernel.UUID
}

// AssignDelegateCommandHandler runs the dispatch engine for a single order.
//
// Flow:
//   - Load the order; an order that already has a delegate resolves to
//     AlreadyAssigned immediately
//   - Look up the directory for the order's (city, service) territory; more
//     than one row is logged as a data integrity warning, lookup proceeds
//     with the deterministically first row
//   - The DelegateDispatcher domain service picks the candidate and checks
//     the order can accept an assignment
//   - Bind via the repository's guarded write (delegate still null, status
//     still New); losing the guard resolves to AlreadyAssigned with the
//     winner's delegate id
//   - No qualifying delegate resolves to NoDelegateAvailable with exactly one
//     DispatchFailed notification; the handler never returns an error for it
type AssignDelegateCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.DelegateDispatcher
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignDelegateCommandHandler creates a handler for dispatch operations.
func NewAssignDelegateCommandHandler(
	uowFactory DispatchUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) AssignDelegateCommandHandler {
	return AssignDelegateCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDelegateDispatcher(),
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes one dispatch attempt.
// The three business outcomes (Assigned, AlreadyAssigned, NoDelegateAvailable)
// are all success-shaped; an error return means infrastructure failure.
func (h AssignDelegateCommandHandler) Handle(
	ctx context.Context, cmd AssignDelegateCommand,
) (AssignDelegateResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignDelegateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignDelegateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	delegateRepo := uow.DelegateRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AssignDelegateResult{}, err
	}

	if ord.Delegate() != nil {
		delegateID := *ord.Delegate()
		return AssignDelegateResult{
			Outcome:    DispatchAlreadyAssigned,
			DelegateID: &delegateID,
		}, nil
	}
	candidates, err := delegateRepo.FindByTerritory(ctx, ord.City(), ord.Service())
	if err != nil {
		return AssignDelegateResult{}, err
	}
	if len(candidates) > 1 {
		h.logger.Warn("data integrity warning: duplicate delegate mappings for territory",
			"city", ord.City().Name(),
			"service", ord.Service().String(),
			"count", len(candidates),
		)
	}

	chosen, err := h.dispatcher.Dispatch(ord, candidates)
	if errors.Is(err, services.ErrDelegateNotFound) {
		h.notify(ctx, ports.Notification{
			Event:       ports.EventDispatchFailed,
			OrderID:     ord.ID(),
			RecipientID: ord.OwnerID(),
			Message: fmt.Sprintf("no delegate available for %s / %s",
				ord.City().Name(), ord.Service()),
		})
		return AssignDelegateResult{Outcome: DispatchNoDelegateAvailable}, nil
	}
	if err != nil {
		return AssignDelegateResult{}, err
	}

	won, err := orderRepo.AssignDelegate(ctx, ord.ID(), chosen.ID())
	if err != nil {
		return AssignDelegateResult{}, err
	}

	if !won {
		// Guard did not match: a concurrent attempt bound a delegate first.
		// Re-read for the winner's id.
		ord, err = orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return AssignDelegateResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return AssignDelegateResult{}, err
		}
		return AssignDelegateResult{
			Outcome:    DispatchAlreadyAssigned,
			DelegateID: ord.Delegate(),
		}, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignDelegateResult{}, err
	}

	delegateID := chosen.ID()
	h.notify(ctx, ports.Notification{
		Event:       ports.EventDelegateAssigned,
		OrderID:     ord.ID(),
		RecipientID: chosen.AccountID(),
		Message:     fmt.Sprintf("order %s assigned to you", ord.ID()),
	})

	return AssignDelegateResult{
		Outcome:    DispatchAssigned,
		DelegateID: &delegateID,
	}, nil
}

func (h AssignDelegateCommandHandler) notify(ctx context.Context, n ports.Notification) {

	if err := h.notifier.Notify(ctx, n); err != nil {
		h.logger.Error("notification delivery failed",
			"event", string(n.Event), "order_id", n.OrderID.String(), "error", err)
	}
}
