// Package delegaterepo provides data transfer objects and mapping functions for
// delegate persistence. It implements the repository pattern for the delegate
// aggregate and enforces the one-delegate-per-territory rule with a composite
// unique index on (city, service).
package delegaterepo

import (
	"time"

	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DelegateDTO represents the database structure for persisting delegate aggregates.
// CreatedAt is a storage-only column: it orders territory lookups so the dispatch
// tie-break between duplicate mappings stays deterministic.
type DelegateDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255);not null"`
	City            string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_delegates_territory"`
	Service         string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_delegates_territory"`
	Available       bool      `gorm:"not null"`
	CompletedOrders int       `gorm:"not null"`
	Earnings        int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for delegate entities.
func (DelegateDTO) TableName() string {
	return "delegates"
}

// fromDomain converts a delegate domain aggregate to its database representation.
func fromDomain(aggregate *delegate.Delegate) DelegateDTO {
	return DelegateDTO{
		ID:              aggregate.ID().Bytes(),
		AccountID:       aggregate.AccountID().Bytes(),
		Name:            aggregate.Name(),
		City:            aggregate.City().Name(),
		Service:         aggregate.Service().String(),
		Available:       aggregate.IsAvailable(),
		CompletedOrders: aggregate.CompletedOrders(),
		Earnings:        aggregate.Earnings(),
	}
}

// toDomain converts a database DTO to a delegate domain aggregate.
func toDomain(dto DelegateDTO) (*delegate.Delegate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	city, err := kernel.NewCity(dto.City)
	if err != nil {
		return nil, err
	}

	service, err := kernel.ServiceCategoryFromString(dto.Service)
	if err != nil {
		return nil, err
	}

	return delegate.RestoreDelegate(delegate.RestoreDelegateParams{
		ID:              id,
		AccountID:       accountID,
		Name:            dto.Name,
		City:            city,
		Service:         service,
		Available:       dto.Available,
		CompletedOrders: dto.CompletedOrders,
		Earnings:        dto.Earnings,
	})
}
