package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand records the hand-over to a carrier: the transport company
// plus at least one of a tracking code or a receipt media reference. The
// receipt reference is the opaque string handed back by media storage.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	delegateID       kernel.UUID
	transportCompany string
	trackingCode     string
	receiptRef       string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command for the delegate to ship an order.
// Proof completeness (company required, tracking or receipt required) is
// validated in the handler when the ShipmentProof value object is built.
func NewShipOrderCommand(
	orderID, delegateID kernel.UUID,
	transportCompany, trackingCode, receiptRef string,
) (ShipOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), delegateID.Validate()); err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{
		orderID:          orderID,
		delegateID:       delegateID,
		transportCompany: transportCompany,
		trackingCode:     trackingCode,
		receiptRef:       receiptRef,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID { return c.orderID }

// DelegateID returns the acting delegate.
func (c ShipOrderCommand) DelegateID() kernel.UUID { return c.delegateID }

// TransportCompany returns the carrier name.
func (c ShipOrderCommand) TransportCompany() string { return c.transportCompany }

// TrackingCode returns the carrier tracking code, may be empty.
func (c ShipOrderCommand) TrackingCode() string { return c.trackingCode }

// ReceiptRef returns the receipt media reference, may be empty.
func (c ShipOrderCommand) ReceiptRef() string { return c.receiptRef }
