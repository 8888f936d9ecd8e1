package order

import (
	"errors"
	"fmt"
	"time"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a paid document-service order being fulfilled. It is the
// aggregate root that manages the order lifecycle from materialization (out of a
// paid invoice) through delegate assignment, document preparation, shipment, and
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, owner, city and service category
//   - Copy count must be positive
//   - The delegate reference is non-nil exactly when the status is downstream
//     of assignment (Assigned through Completed)
//   - Status transitions are strictly forward; each transition stamps exactly
//     one timestamp that is set once and never overwritten
//   - Delegate-only and courier-only transitions verify the acting party
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. A refused transition leaves the
// aggregate untouched.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID references the customer account that paid for the order
	ownerID kernel.UUID

	// documentType names the administrative document being procured
	documentType string

	// service is the administrative body type the order is routed through
	service kernel.ServiceCategory

	// city is the dispatch territory the order is fulfilled in
	city kernel.City

	// copies is the number of document copies ordered (must be positive)
	copies int

	// totalAmount is the amount owed by the owner, in minor currency units
	totalAmount int64

	// delegatePayout is the stored flat payout, used as the legacy fallback
	// when the billing breakdown carries no itemized document lines
	delegatePayout int64

	// billing is the itemized pricing captured at invoice-creation time
	billing BillingBreakdown

	// delegateID is the assigned delegate (nil while unassigned)
	delegateID *kernel.UUID

	// courierID is the courier handling the physical hand-off (nil until known)
	courierID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// deliveryInfo holds recipient details and the delivery confirmation code;
	// nil until the owner supplies them
	deliveryInfo *DeliveryInfo

	// proof documents the shipment; nil until the order ships
	proof *ShipmentProof

	createdAt   time.Time
	assignedAt  *time.Time
	startedAt   *time.Time
	readyAt     *time.Time
	shippedAt   *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder materializes a new Order in StatusNew.
// This is the path the payment-to-order converter takes: all pricing comes from
// the invoice's embedded payload, never re-derived.
//
// Parameters:
//   - id: unique identifier (derived deterministically from the invoice by the converter)
//   - ownerID: the paying customer's account
//   - documentType: the administrative document being procured (must be non-empty)
//   - service: administrative body type (must be a valid category)
//   - city: dispatch territory (must be constructed)
//   - copies: number of copies (must be positive)
//   - totalAmount: amount owed by the owner (must be non-negative)
//   - delegatePayout: stored flat payout fallback (must be non-negative)
//   - billing: itemized pricing captured at invoice-creation time
//
// Returns the created order with StatusNew, no delegate, and only the creation
// timestamp set, or a validation error.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	documentType string,
	service kernel.ServiceCategory,
	city kernel.City,
	copies int,
	totalAmount int64,
	delegatePayout int64,
	billing BillingBreakdown,
) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setDocumentType(documentType),
		o.setService(service),
		o.setCity(city),
		o.setCopies(copies),
		o.setTotalAmount(totalAmount),
		o.setDelegatePayout(delegatePayout),
		o.setBilling(billing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries every persisted attribute needed to rebuild an
// Order aggregate from storage.
type RestoreOrderParams struct {
	ID             kernel.UUID
	OwnerID        kernel.UUID
	DocumentType   string
	Service        kernel.ServiceCategory
	City           kernel.City
	Copies         int
	TotalAmount    int64
	DelegatePayout int64
	Billing        BillingBreakdown
	DelegateID     *kernel.UUID
	CourierID      *kernel.UUID
	Status         Status
	DeliveryInfo   *DeliveryInfo
	Proof          *ShipmentProof
	CreatedAt      time.Time
	AssignedAt     *time.Time
	StartedAt      *time.Time
	ReadyAt        *time.Time
	ShippedAt      *time.Time
	InTransitAt    *time.Time
	DeliveredAt    *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
}

// RestoreOrder reconstructs an Order from persistence.
// It re-validates the construction invariants, including the status/delegate
// consistency rule, so corrupt rows surface as errors instead of invalid
// aggregates.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		status:        p.Status,
		createdAt:     p.CreatedAt,
		delegateID:    p.DelegateID,
		courierID:     p.CourierID,
		deliveryInfo:  p.DeliveryInfo,
		proof:         p.Proof,
		assignedAt:    p.AssignedAt,
		startedAt:     p.StartedAt,
		readyAt:       p.ReadyAt,
		shippedAt:     p.ShippedAt,
		inTransitAt:   p.InTransitAt,
		deliveredAt:   p.DeliveredAt,
		completedAt:   p.CompletedAt,
		cancelledAt:   p.CancelledAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setOwnerID(p.OwnerID),
		o.setDocumentType(p.DocumentType),
		o.setService(p.Service),
		o.setCity(p.City),
		o.setCopies(p.Copies),
		o.setTotalAmount(p.TotalAmount),
		o.setDelegatePayout(p.DelegatePayout),
		o.setBilling(p.Billing),
		p.Status.Validate(),
		p.Status.ValidateCanHaveDelegate(p.DelegateID != nil),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory
// function. This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the paying customer's account reference.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// DocumentType returns the administrative document being procured.
func (o *Order) DocumentType() string {
	return o.documentType
}

// Service returns the administrative body type the order is routed through.
func (o *Order) Service() kernel.ServiceCategory {
	return o.service
}

// City returns the dispatch territory the order is fulfilled in.
func (o *Order) City() kernel.City {
	return o.city
}

// Copies returns the number of document copies ordered.
func (o *Order) Copies() int {
	return o.copies
}

// TotalAmount returns the amount owed by the owner.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// DelegatePayout returns the stored flat payout fallback.
func (o *Order) DelegatePayout() int64 {
	return o.delegatePayout
}

// Billing returns the itemized billing breakdown.
func (o *Order) Billing() BillingBreakdown {
	return o.billing
}

// Delegate returns the assigned delegate's ID, nil while unassigned.
func (o *Order) Delegate() *kernel.UUID {
	return o.delegateID
}

// Courier returns the courier's ID, nil until a courier is involved.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryInfo returns the recipient details, nil until supplied.
func (o *Order) DeliveryInfo() *DeliveryInfo {
	return o.deliveryInfo
}

// Proof returns the shipment proof, nil until the order ships.
func (o *Order) Proof() *ShipmentProof {
	return o.proof
}

// CreatedAt returns the materialization timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AssignedAt returns the assignment timestamp, nil until assigned.
func (o *Order) AssignedAt() *time.Time { return o.assignedAt }

// StartedAt returns the in-progress timestamp, nil until started.
func (o *Order) StartedAt() *time.Time { return o.startedAt }

// ReadyAt returns the ready timestamp, nil until ready.
func (o *Order) ReadyAt() *time.Time { return o.readyAt }

// ShippedAt returns the shipment timestamp, nil until shipped.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// InTransitAt returns the courier hand-off timestamp, nil unless a hand-off happened.
func (o *Order) InTransitAt() *time.Time { return o.inTransitAt }

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CompletedAt returns the completion timestamp, nil until completed.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// CancelledAt returns the cancellation timestamp, nil unless cancelled.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// Assign binds the order to a delegate and transitions New -> Assigned.
// This is the dispatch engine's transition: it is valid exactly once per order,
// never a reassignment. The persistence layer additionally guards the write with
// a "delegate is currently null" predicate so concurrent dispatch attempts
// cannot both win.
func (o *Order) Assign(delegateID kernel.UUID) error {
	if err := delegateID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.delegateID = &delegateID
	o.stampOnce(&o.assignedAt)
	return nil
}

// ForceAssign binds a chosen delegate outside the normal dispatch match.
// This is the administrative override: it may also replace the delegate of an
// already assigned order, but never touches orders past InProgress.
// Callers log override actions distinctly from regular transitions.
func (o *Order) ForceAssign(delegateID kernel.UUID) error {
	if err := delegateID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case StatusNew, StatusAssigned:
		o.status = StatusAssigned
		o.delegateID = &delegateID
		o.stampOnce(&o.assignedAt)
		return nil
	default:
		return NewInvalidTransitionError(o.status, StatusAssigned)
	}
}

// StartProcessing transitions Assigned -> InProgress.
// Only the assigned delegate may invoke it.
func (o *Order) StartProcessing(actorID kernel.UUID) error {
	if err := o.authorizeDelegate(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampOnce(&o.startedAt)
	return nil
}

// SetDeliveryInfo records the recipient and delivery details.
// Allowed while the order is Assigned or InProgress: the details must exist
// before MarkReady and are frozen once the documents are ready.
func (o *Order) SetDeliveryInfo(info DeliveryInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	if o.status != StatusAssigned && o.status != StatusInProgress {
		return fmt.Errorf("%w: delivery info can only be set before the order is ready",
			ErrInvalidTransition)
	}

	o.deliveryInfo = &info
	return nil
}

// MarkReady transitions InProgress -> Ready.
// Only the assigned delegate may invoke it, and the transition is refused with
// ErrMissingDeliveryInfo until the recipient/delivery details are present.
func (o *Order) MarkReady(actorID kernel.UUID) error {
	if err := o.authorizeDelegate(actorID); err != nil {
		return err
	}

	if o.status == StatusInProgress && o.deliveryInfo == nil {
		return ErrMissingDeliveryInfo
	}

	newStatus, err := o.status.Ready()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampOnce(&o.readyAt)
	return nil
}

// AssignCourier records the courier responsible for the physical hand-off.
// Allowed once the documents are ready and until they are delivered.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case StatusReady, StatusShipped, StatusInTransit:
		o.courierID = &courierID
		return nil
	default:
		return fmt.Errorf("%w: courier can only be set between ready and delivery",
			ErrInvalidTransition)
	}
}

// Ship transitions Ready -> Shipped, recording the shipment proof.
// Only the assigned delegate may invoke it. The proof constructor already
// enforces the business gate: transport company always, plus at least one of a
// tracking code or a receipt photo reference.
func (o *Order) Ship(actorID kernel.UUID, proof ShipmentProof) error {
	if err := o.authorizeDelegate(actorID); err != nil {
		return err
	}

	if err := proof.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.proof = &proof
	o.stampOnce(&o.shippedAt)
	return nil
}

// HandOff transitions Shipped -> InTransit when a courier takes over.
// Only the assigned courier may invoke it.
func (o *Order) HandOff(actorID kernel.UUID) error {
	if err := o.authorizeCourier(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.HandOff()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampOnce(&o.inTransitAt)
	return nil
}

// ConfirmDelivery transitions Shipped/InTransit -> Delivered.
// Only the assigned courier may invoke it, and the recipient's 4-digit code must
// match the code stored on the order. A mismatch refuses the transition with
// ErrDeliveryCodeMismatch, leaves the order untouched, and may be retried with
// the corrected code; there is no retry budget.
func (o *Order) ConfirmDelivery(actorID kernel.UUID, code string) error {
	if err := o.authorizeCourier(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.deliveryInfo == nil {
		return ErrMissingDeliveryInfo
	}
	if !o.deliveryInfo.MatchesCode(code) {
		return ErrDeliveryCodeMismatch
	}

	o.status = newStatus
	o.stampOnce(&o.deliveredAt)
	return nil
}

// Complete performs the terminal bookkeeping transition Delivered -> Completed.
// Completing an already completed order is an idempotent no-op; the completion
// timestamp is never overwritten.
func (o *Order) Complete() error {
	if o.status == StatusCompleted {
		return nil
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampOnce(&o.completedAt)
	return nil
}

// Cancel transitions New -> Cancelled. One-way, no rollback path.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampOnce(&o.cancelledAt)
	return nil
}

// ForceAdvance moves the order to a later status outside the normal actor
// authorization rule. This is the administrative override path: it skips actor
// checks and readiness gates but still refuses backward moves and still refuses
// to place a delegate-requiring status on an unassigned order.
// Callers log override actions distinctly from regular transitions.
func (o *Order) ForceAdvance(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if to == StatusCancelled {
		return o.Cancel()
	}

	if !to.IsForwardOf(o.status) {
		return NewInvalidTransitionError(o.status, to)
	}

	if err := to.ValidateCanHaveDelegate(o.delegateID != nil); err != nil {
		return err
	}

	o.status = to
	switch to {
	case StatusAssigned:
		o.stampOnce(&o.assignedAt)
	case StatusInProgress:
		o.stampOnce(&o.startedAt)
	case StatusReady:
		o.stampOnce(&o.readyAt)
	case StatusShipped:
		o.stampOnce(&o.shippedAt)
	case StatusInTransit:
		o.stampOnce(&o.inTransitAt)
	case StatusDelivered:
		o.stampOnce(&o.deliveredAt)
	case StatusCompleted:
		o.stampOnce(&o.completedAt)
	}
	return nil
}

// authorizeDelegate verifies the acting party is the assigned delegate.
func (o *Order) authorizeDelegate(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.delegateID == nil || !o.delegateID.IsEqual(actorID) {
		return ErrUnauthorizedActor
	}
	return nil
}

// authorizeCourier verifies the acting party is the assigned courier.
func (o *Order) authorizeCourier(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(actorID) {
		return ErrUnauthorizedActor
	}
	return nil
}

// stampOnce sets a transition timestamp exactly once; set-and-forget semantics
// keep retried transitions from rewriting history.
func (o *Order) stampOnce(field **time.Time) {
	if *field == nil {
		now := time.Now().UTC()
		*field = &now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setDocumentType(documentType string) error {
	if documentType == "" {
		return errs.NewValueIsRequiredError("document type")
	}
	o.documentType = documentType
	return nil
}

func (o *Order) setService(service kernel.ServiceCategory) error {
	if err := service.Validate(); err != nil {
		return err
	}
	o.service = service
	return nil
}

func (o *Order) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	o.city = city
	return nil
}

func (o *Order) setCopies(copies int) error {
	if copies <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("copies is invalid",
			fmt.Errorf("%d is not greater than 0", copies))
	}
	o.copies = copies
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("%d is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setDelegatePayout(delegatePayout int64) error {
	if delegatePayout < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delegate payout is invalid",
			fmt.Errorf("%d is negative", delegatePayout))
	}
	o.delegatePayout = delegatePayout
	return nil
}

func (o *Order) setBilling(billing BillingBreakdown) error {
	if err := billing.Validate(); err != nil {
		return err
	}
	o.billing = billing
	return nil
}
