package delegaterepo

import (
	"context"
	"errors"

	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormDelegateRepository implements DelegateRepository using GORM.
type GormDelegateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDelegateRepository creates a new GORM delegate repository.
func NewGormDelegateRepository(db *gorm.DB, tracker aggregateTracker) *GormDelegateRepository {
	return &GormDelegateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delegate to the database.
// A unique violation on the territory index or the account index is reported
// as ErrObjectAlreadyExists: each (city, service) pair and each account may
// carry at most one delegate.
func (r *GormDelegateRepository) Add(ctx context.Context, aggregate *delegate.Delegate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errs.NewObjectAlreadyExistsErrorWithCause("delegate", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delegate to the database.
func (r *GormDelegateRepository) Update(ctx context.Context, aggregate *delegate.Delegate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DelegateDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "city", "service", "available", "completed_orders", "earnings").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delegate by ID.
func (r *GormDelegateRepository) Get(ctx context.Context, id kernel.UUID) (*delegate.Delegate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DelegateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delegate", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAccount retrieves the delegate bound to the given account.
func (r *GormDelegateRepository) GetByAccount(
	ctx context.Context,
	accountID kernel.UUID,
) (*delegate.Delegate, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto DelegateDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delegate account", accountID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByTerritory retrieves the delegates registered for a (city, service)
// territory, sorted by registration time then id so callers that must pick one
// always pick the same one. The territory index normally caps the result at a
// single row; more than one row means the directory data is inconsistent and
// it is the caller's job to flag that.
func (r *GormDelegateRepository) FindByTerritory(
	ctx context.Context,
	city kernel.City,
	service kernel.ServiceCategory,
) ([]*delegate.Delegate, error) {
	if err := errors.Join(city.Validate(), service.Validate()); err != nil {
		return nil, err
	}

	var dtos []DelegateDTO
	err := r.db.WithContext(ctx).
		Where("city = ? AND service = ?", city.Name(), service.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	delegates := make([]*delegate.Delegate, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		delegates = append(delegates, d)
	}

	return delegates, nil
}
