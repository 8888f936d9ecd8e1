package orderrepo

import (
	"context"
	"errors"
	"time"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// Order ids are derived deterministically from their invoice, so a primary key
// conflict means the order was already materialized; that case is reported as
// ErrObjectAlreadyExists so a retrying payment confirmation can treat it as done.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AssignDelegate binds a delegate to an order with a single guarded write.
// The predicate only matches an order that is still new and unassigned, so
// concurrent dispatchers racing for the same order produce exactly one winner.
// Returns false without error when the guard does not match; the caller
// re-reads the row to learn the current state.
func (r *GormOrderRepository) AssignDelegate(
	ctx context.Context,
	orderID kernel.UUID,
	delegateID kernel.UUID,
) (bool, error) {
	if err := errors.Join(orderID.Validate(), delegateID.Validate()); err != nil {
		return false, err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND delegate_id IS NULL AND status = ?", orderID.Bytes(), order.StatusNew.String()).
		Updates(map[string]any{
			"delegate_id": delegateID.Bytes(),
			"status":      order.StatusAssigned.String(),
			"assigned_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// GetAllUnassigned retrieves every order still waiting for a delegate,
// oldest first so the retry pass drains the backlog in arrival order.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND delegate_id IS NULL", order.StatusNew.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByDelegate retrieves the delegate's orders that still need work:
// everything assigned to them that is neither completed nor cancelled.
func (r *GormOrderRepository) GetAllActiveByDelegate(
	ctx context.Context,
	delegateID kernel.UUID,
) ([]*order.Order, error) {
	if err := delegateID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("delegate_id = ? AND status NOT IN ?",
			delegateID.Bytes(),
			[]string{order.StatusCompleted.String(), order.StatusCancelled.String()}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
