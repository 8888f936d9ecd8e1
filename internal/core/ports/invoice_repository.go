package ports

import (
	"context"
	"time"

	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// Besides plain storage it carries the guarded pending -> paid write that
// keeps the payment-to-order conversion exactly-once under concurrent
// webhook deliveries.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByReference retrieves an invoice by its payment reference code.
	GetByReference(ctx context.Context, reference string) (*invoice.Invoice, error)

	// MarkPaid executes the guarded payment write: a single conditional
	// update that sets status paid, the materialized order id, and the
	// payment timestamp only while the stored row is still pending. Returns
	// false, without error, when the guard does not match — the invoice was
	// already processed (or expired/cancelled meanwhile) and the caller must
	// re-read it to find out which.
	MarkPaid(ctx context.Context, invoiceID, orderID kernel.UUID, paidAt time.Time) (bool, error)

	// GetAllExpiredPending retrieves pending invoices created before the
	// given cutoff, oldest first. Feeds the expiry job.
	GetAllExpiredPending(ctx context.Context, cutoff time.Time) ([]*invoice.Invoice, error)
}
