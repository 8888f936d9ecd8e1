// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight from
// the database, returning plain response structs shaped for their consumers.
package queries

import (
	"errors"
	"time"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves every order that still needs work:
// anything not yet completed or cancelled. Feeds the operations dashboard.
//
// Example:
//
//	query := NewGetUncompletedOrdersQuery()
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve in-flight orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse is one in-flight order row.
type GetUncompletedOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       string
	DocumentType string
	City         string
	Service      string
	DelegateID   *kernel.UUID
	CreatedAt    time.Time
}
