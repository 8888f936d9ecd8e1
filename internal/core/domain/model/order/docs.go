// Package order provides domain entities and business logic for order lifecycle
// management in the document-service marketplace. It implements the Order
// aggregate root with its strictly forward status state machine.
//
// The package includes:
//   - Order: The aggregate root managing identity, billing, assignment, and lifecycle
//   - Status: A state machine that enforces valid, forward-only status transitions
//   - BillingBreakdown: Itemized pricing captured at invoice-creation time
//   - DeliveryInfo: Recipient details plus the 4-digit delivery confirmation code
//   - ShipmentProof: Transport company plus tracking code and/or receipt reference
//
// Key business rules:
//   - Orders are materialized from paid invoices in status "new"
//   - The delegate reference is non-nil exactly when status is assigned..completed
//   - Transitions are strictly forward; each stamps one timestamp exactly once
//   - Delegate-only and courier-only transitions verify the acting party
//   - A refused transition leaves the aggregate unchanged
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
