package commands

import (
	"context"
	"fmt"
	"log/slog"

	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/core/ports"
)

// ShipOrderCommandHandler handles the Ready -> Shipped transition and fires
// the DocumentShipped notification to the owner.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewShipOrderCommandHandler creates a handler for shipping operations.
func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the ship command.
// Building the ShipmentProof enforces the proof gate: a transport company is
// always required together with at least one of tracking code or receipt
// reference.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	proof, err := order.NewShipmentProof(
		cmd.TransportCompany(), cmd.TrackingCode(), cmd.ReceiptRef())
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

	if err = ord.Ship(cmd.DelegateID(), proof); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, ports.Notification{
		Event:       ports.EventDocumentShipped,
		OrderID:     ord.ID(),
		RecipientID: ord.OwnerID(),
		Message:     fmt.Sprintf("document for order %s shipped via %s", ord.ID(), cmd.TransportCompany()),
	}); err != nil {
		h.logger.Error("notification delivery failed",
			"event", string(ports.EventDocumentShipped), "order_id", ord.ID().String(), "error", err)
	}

	return nil
}
