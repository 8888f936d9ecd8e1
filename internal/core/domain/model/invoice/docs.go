// Package invoice provides the pre-payment aggregate of the request lifecycle.
// An Invoice captures the would-be order's price and creation payload when the
// owner submits a request, and converts to exactly one Order when payment is
// confirmed (pending -> paid).
//
// Key business rules:
//   - Exactly one Order per invoice, created only on pending -> paid
//   - The materialized order id is stored on the invoice forever, making
//     re-confirmation an idempotent success rather than a duplicate order
//   - Paid, expired, and cancelled are terminal statuses
package invoice
