package invoicerepo

import (
	"context"
	"errors"
	"time"

	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database.
// A unique violation on the reference index is reported as
// ErrObjectAlreadyExists so a replayed creation request is rejected cleanly.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errs.NewObjectAlreadyExistsErrorWithCause("invoice", aggregate.Reference(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice to the database.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByReference retrieves an invoice by its payment reference.
func (r *GormInvoiceRepository) GetByReference(
	ctx context.Context,
	reference string,
) (*invoice.Invoice, error) {
	if reference == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice reference", reference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkPaid flips a pending invoice to paid with a single guarded write,
// binding the order id and payment timestamp in the same statement. The
// predicate only matches a pending row, so concurrent payment confirmations
// for the same invoice produce exactly one winner. Returns false without
// error when the guard does not match; the caller re-reads the row to learn
// the current state.
func (r *GormInvoiceRepository) MarkPaid(
	ctx context.Context,
	invoiceID kernel.UUID,
	orderID kernel.UUID,
	paidAt time.Time,
) (bool, error) {
	if err := errors.Join(invoiceID.Validate(), orderID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ? AND status = ?", invoiceID.Bytes(), invoice.StatusPending.String()).
		Updates(map[string]any{
			"status":   invoice.StatusPaid.String(),
			"order_id": orderID.Bytes(),
			"paid_at":  paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// GetAllExpiredPending retrieves pending invoices created before the cutoff,
// oldest first. Used by the expiry job to close payment windows that lapsed.
func (r *GormInvoiceRepository) GetAllExpiredPending(
	ctx context.Context,
	cutoff time.Time,
) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", invoice.StatusPending.String(), cutoff).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}
