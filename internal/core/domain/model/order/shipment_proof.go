package order

import (
	"errors"

	"docdispatch/internal/pkg/errs"
	"docdispatch/internal/pkg/guard"
)

// Shipment proof errors.
var (
	// ErrShipmentProofIsNotConstructed is returned when using an improperly
	// initialized ShipmentProof.
	ErrShipmentProofIsNotConstructed = errors.New(
		"ShipmentProof must be created via NewShipmentProof constructor")

	// ErrMissingShipmentProof is returned when shipping is attempted with neither
	// a tracking code nor a receipt photo reference. Either one alone suffices.
	ErrMissingShipmentProof = errors.New(
		"shipment proof is required: tracking code or receipt photo")
)

// ShipmentProof documents how an order physically left the delegate's hands:
// the transport company (always mandatory) plus at least one of a shipment
// tracking code or a receipt photo reference. The receipt reference is an opaque
// string returned by media storage; the engine never inspects its content.
//
// ShipmentProof is an immutable value object; use NewShipmentProof.
type ShipmentProof struct { //nolint:recvcheck //using for validation
	transportCompany string
	trackingCode     string
	receiptRef       string

	guard guard.ConstructorGuard
}

// NewShipmentProof creates a validated shipment proof.
// transportCompany is mandatory; of trackingCode and receiptRef at least one
// must be non-empty.
func NewShipmentProof(transportCompany, trackingCode, receiptRef string) (ShipmentProof, error) {
	if transportCompany == "" {
		return ShipmentProof{}, errs.NewValueIsRequiredError("transport company")
	}
	if trackingCode == "" && receiptRef == "" {
		return ShipmentProof{}, ErrMissingShipmentProof
	}

	return ShipmentProof{
		transportCompany: transportCompany,
		trackingCode:     trackingCode,
		receiptRef:       receiptRef,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// TransportCompany returns the transport company name.
func (p ShipmentProof) TransportCompany() string {
	return p.transportCompany
}

// TrackingCode returns the shipment tracking code, possibly empty.
func (p ShipmentProof) TrackingCode() string {
	return p.trackingCode
}

// ReceiptRef returns the opaque receipt photo reference, possibly empty.
func (p ShipmentProof) ReceiptRef() string {
	return p.receiptRef
}

// Validate ensures the ShipmentProof was created through NewShipmentProof.
func (p ShipmentProof) Validate() error {
	return p.guard.Validate(ErrShipmentProofIsNotConstructed)
}
