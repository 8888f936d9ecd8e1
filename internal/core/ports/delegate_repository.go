// Package ports defines repository and outbound interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/kernel"
)

// DelegateRepository is the delegate directory: the persistence contract for
// delegate aggregates and the (city, service) -> delegate lookup the dispatch
// engine runs on.
type DelegateRepository interface {
	// Add persists a new delegate aggregate to storage.
	// Storage enforces at most one delegate per (city, service) territory;
	// a second registration for the same territory fails.
	Add(ctx context.Context, delegate *delegate.Delegate) error

	// Update persists changes to an existing delegate aggregate.
	Update(ctx context.Context, delegate *delegate.Delegate) error

	// Get retrieves a delegate aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delegate.Delegate, error)

	// GetByAccount retrieves the delegate linked to the given login account.
	GetByAccount(ctx context.Context, accountID kernel.UUID) (*delegate.Delegate, error)

	// FindByTerritory retrieves the delegates registered for a (city, service)
	// pair, sorted by registration time then id so lookup stays deterministic
	// even if duplicate rows slipped past the unique constraint. Callers treat
	// more than one row as a data integrity problem worth logging.
	FindByTerritory(
		ctx context.Context, city kernel.City, service kernel.ServiceCategory,
	) ([]*delegate.Delegate, error)
}
