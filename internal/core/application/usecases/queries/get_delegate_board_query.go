package queries

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var ErrGetDelegateBoardQueryIsNotConstructed = errors.New(
	"GetDelegateBoardQuery must be created via NewGetDelegateBoardQuery constructor",
)

// GetDelegateBoardQuery retrieves a delegate's work board: the orders that
// still need their attention plus lifetime completion totals.
type GetDelegateBoardQuery struct { //nolint:recvcheck //using for validation
	delegateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDelegateBoardQuery creates a query for the given delegate's board.
func NewGetDelegateBoardQuery(delegateID kernel.UUID) (GetDelegateBoardQuery, error) {
	if err := delegateID.Validate(); err != nil {
		return GetDelegateBoardQuery{}, err
	}

	return GetDelegateBoardQuery{
		delegateID: delegateID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDelegateBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDelegateBoardQueryIsNotConstructed)
}

// DelegateID returns the delegate whose board is requested.
func (q GetDelegateBoardQuery) DelegateID() kernel.UUID {
	return q.delegateID
}

// DelegateBoardOrder is one active order on the board.
type DelegateBoardOrder struct {
	ID           kernel.UUID
	Status       string
	DocumentType string
	City         string
	Copies       int
}

// GetDelegateBoardQueryResponse is the delegate's work board.
type GetDelegateBoardQueryResponse struct {
	DelegateID      kernel.UUID
	Name            string
	Available       bool
	CompletedOrders int
	Earnings        int64
	ActiveOrders    []DelegateBoardOrder
}
