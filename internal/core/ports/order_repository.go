package ports

import (
	"context"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities based
// on their status and assignment state, plus the guarded delegate-assignment
// write the dispatch engine relies on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignDelegate executes the guarded assignment write: a single
	// conditional update that sets the delegate and moves the order to
	// Assigned only while the stored row still has no delegate and is still
	// in New status. Returns false, without error, when the guard does not
	// match, meaning another dispatch attempt already won.
	AssignDelegate(ctx context.Context, orderID, delegateID kernel.UUID) (bool, error)

	// GetAllUnassigned retrieves all orders still in New status with no
	// delegate, oldest first. Feeds the batch dispatch pass and the retry job.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveByDelegate retrieves the delegate's orders that still need
	// work, i.e. assigned onward but not completed or cancelled.
	GetAllActiveByDelegate(ctx context.Context, delegateID kernel.UUID) ([]*order.Order, error)
}
