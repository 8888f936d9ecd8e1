package commands

import (
	"context"

	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
)

// CreateInvoiceCommandHandler handles the business logic for invoice creation.
// Builds the domain value objects from the raw command attributes, captures
// the order payload, and persists the pending invoice.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation operations.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command.
// The invoice starts pending; conversion to an order happens only when
// payment is confirmed.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	city, err := kernel.NewCity(cmd.CityName())
	if err != nil {
		return err
	}

	billing, err := order.NewBillingBreakdown(cmd.Documents(), cmd.ServiceFee(), cmd.ShippingFee())
	if err != nil {
		return err
	}

	payload, err := invoice.NewOrderPayload(
		cmd.DocumentType(), cmd.Service(), city, cmd.Copies(),
		cmd.Amount(), cmd.DelegatePayout(), billing)
	if err != nil {
		return err
	}

	inv, err := invoice.NewInvoice(
		cmd.InvoiceID(), cmd.Reference(), cmd.OwnerID(), cmd.Amount(), payload)
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

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
