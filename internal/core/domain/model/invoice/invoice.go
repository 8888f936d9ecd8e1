package invoice

import (
	"errors"
	"time"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/errs"
)

// Domain errors for invoice lifecycle operations.
var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

	// ErrAlreadyProcessed is returned when confirming payment on an invoice that
	// is already paid. Callers treat it as a success-shaped idempotency hit: the
	// invoice carries the order id created by the first confirmation.
	ErrAlreadyProcessed = errors.New("invoice already processed")

	// ErrInvoiceNotPending is returned when a lifecycle transition is attempted
	// on an invoice outside the pending status (expired, cancelled, or unknown).
	ErrInvoiceNotPending = errors.New("invoice is not pending")
)

// Invoice is the pre-payment record of a would-be order. It is the aggregate
// root for the "pending_payment" phase of the request lifecycle: it holds the
// reference code the owner pays against, the amount, and the embedded
// order-creation payload captured at invoice-creation time.
//
// Invoice follows these invariants:
//   - Exactly one Order is ever created per invoice, and only on the
//     pending -> paid transition
//   - The order id is non-nil exactly when the status is paid; it stays stored
//     forever so retried confirmations resolve idempotently
//   - Paid, expired, and cancelled are terminal
type Invoice struct {
	// id is the unique identifier for the invoice
	id kernel.UUID

	// reference is the unique human-shareable payment code
	reference string

	// ownerID references the customer account the invoice was issued to
	ownerID kernel.UUID

	// amount is the total owed, in minor currency units
	amount int64

	// status is the current state in the invoice lifecycle
	status Status

	// payload is the embedded order-creation payload
	payload OrderPayload

	// orderID references the order materialized on payment (nil until paid)
	orderID *kernel.UUID

	createdAt time.Time
	paidAt    *time.Time

	// isConstructed ensures the invoice was created via a factory function
	isConstructed bool
}

// NewInvoice creates a pending invoice for the given owner, amount, and
// captured order payload.
func NewInvoice(
	id kernel.UUID,
	reference string,
	ownerID kernel.UUID,
	amount int64,
	payload OrderPayload,
) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setReference(reference),
		inv.setOwnerID(ownerID),
		inv.setAmount(amount),
		inv.setPayload(payload),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoiceParams carries every persisted attribute needed to rebuild an
// Invoice aggregate from storage.
type RestoreInvoiceParams struct {
	ID        kernel.UUID
	Reference string
	OwnerID   kernel.UUID
	Amount    int64
	Status    Status
	Payload   OrderPayload
	OrderID   *kernel.UUID
	CreatedAt time.Time
	PaidAt    *time.Time
}

// RestoreInvoice reconstructs an Invoice from persistence, re-validating the
// construction invariants including the status/order-id consistency rule.
func RestoreInvoice(p RestoreInvoiceParams) (*Invoice, error) {
	inv := &Invoice{
		status:        p.Status,
		orderID:       p.OrderID,
		createdAt:     p.CreatedAt,
		paidAt:        p.PaidAt,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(p.ID),
		inv.setReference(p.Reference),
		inv.setOwnerID(p.OwnerID),
		inv.setAmount(p.Amount),
		inv.setPayload(p.Payload),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if (p.Status == StatusPaid) != (p.OrderID != nil) {
		return nil, errs.NewValueIsInvalidError(
			"order id must be present exactly when the invoice is paid")
	}

	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// Reference returns the unique human-shareable payment code.
func (i *Invoice) Reference() string {
	return i.reference
}

// OwnerID returns the customer account the invoice was issued to.
func (i *Invoice) OwnerID() kernel.UUID {
	return i.ownerID
}

// Amount returns the total owed.
func (i *Invoice) Amount() int64 {
	return i.amount
}

// Status returns the current status of the invoice.
func (i *Invoice) Status() Status {
	return i.status
}

// Payload returns the embedded order-creation payload.
func (i *Invoice) Payload() OrderPayload {
	return i.payload
}

// OrderID returns the id of the order materialized on payment, nil until paid.
func (i *Invoice) OrderID() *kernel.UUID {
	return i.orderID
}

// CreatedAt returns the invoice creation timestamp.
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }

// PaidAt returns the payment confirmation timestamp, nil until paid.
func (i *Invoice) PaidAt() *time.Time { return i.paidAt }

// MarkPaid transitions pending -> paid, stamping the materialized order id and
// the payment timestamp. An already paid invoice returns ErrAlreadyProcessed;
// expired or cancelled invoices return ErrInvoiceNotPending. The persistence
// layer additionally guards the write with a "status is currently pending"
// predicate so a retried payment webhook cannot pay an invoice twice.
func (i *Invoice) MarkPaid(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	switch i.status {
	case StatusPaid:
		return ErrAlreadyProcessed
	case StatusPending:
		now := time.Now().UTC()
		i.status = StatusPaid
		i.orderID = &orderID
		i.paidAt = &now
		return nil
	default:
		return ErrInvoiceNotPending
	}
}

// Expire transitions pending -> expired. Terminal, one-way.
func (i *Invoice) Expire() error {
	if i.status != StatusPending {
		return ErrInvoiceNotPending
	}
	i.status = StatusExpired
	return nil
}

// Cancel transitions pending -> cancelled. Terminal, one-way.
func (i *Invoice) Cancel() error {
	if i.status != StatusPending {
		return ErrInvoiceNotPending
	}
	i.status = StatusCancelled
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	i.reference = reference
	return nil
}

func (i *Invoice) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	i.ownerID = ownerID
	return nil
}

func (i *Invoice) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount is negative")
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setPayload(payload OrderPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	i.payload = payload
	return nil
}
