package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/pkg/errs"
)

// GetDelegateBoardQueryHandler reads a delegate's board from the database:
// identity and lifetime totals from the delegates table, active orders from
// the orders table.
type GetDelegateBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetDelegateBoardQueryHandler creates a handler for delegate board queries.
func NewGetDelegateBoardQueryHandler(db *gorm.DB) GetDelegateBoardQueryHandler {
	return GetDelegateBoardQueryHandler{db: db}
}

type delegateBoardRow struct {
	ID              uuid.UUID `gorm:"column:id"`
	Name            string    `gorm:"column:name"`
	Available       bool      `gorm:"column:available"`
	CompletedOrders int       `gorm:"column:completed_orders"`
	Earnings        int64     `gorm:"column:earnings"`
}

type delegateBoardOrderRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	Status       string    `gorm:"column:status"`
	DocumentType string    `gorm:"column:document_type"`
	City         string    `gorm:"column:city"`
	Copies       int       `gorm:"column:copies"`
}

// Handle executes the board query.
// Returns errs.ErrObjectNotFound when the delegate does not exist.
func (h GetDelegateBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDelegateBoardQuery,
) (GetDelegateBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDelegateBoardQueryResponse{}, err
	}

	var delegateRow delegateBoardRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, available, completed_orders, earnings
		FROM delegates
		WHERE id = ?
	`, query.DelegateID().String()).First(&delegateRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetDelegateBoardQueryResponse{}, errs.NewObjectNotFoundError(
			"delegateID", query.DelegateID())
	}
	if err != nil {
		return GetDelegateBoardQueryResponse{}, err
	}

	var orderRows []delegateBoardOrderRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT id, status, document_type, city, copies
		FROM orders
		WHERE delegate_id = ? AND status IN ?
		ORDER BY created_at, id
	`, query.DelegateID().String(), activeStatuses()).
		Scan(&orderRows).Error
	if err != nil {
		return GetDelegateBoardQueryResponse{}, err
	}

	delegateID, err := kernel.UUIDFromBytes(delegateRow.ID[:])
	if err != nil {
		return GetDelegateBoardQueryResponse{}, err
	}

	activeOrders := make([]DelegateBoardOrder, 0, len(orderRows))
	for _, row := range orderRows {
		orderID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return GetDelegateBoardQueryResponse{}, idErr
		}
		activeOrders = append(activeOrders, DelegateBoardOrder{
			ID:           orderID,
			Status:       row.Status,
			DocumentType: row.DocumentType,
			City:         row.City,
			Copies:       row.Copies,
		})
	}

	return GetDelegateBoardQueryResponse{
		DelegateID:      delegateID,
		Name:            delegateRow.Name,
		Available:       delegateRow.Available,
		CompletedOrders: delegateRow.CompletedOrders,
		Earnings:        delegateRow.Earnings,
		ActiveOrders:    activeOrders,
	}, nil
}

// activeStatuses lists the statuses that count as work on the board.
func activeStatuses() []string {
	return lo.Map([]order.Status{
		order.StatusAssigned, order.StatusInProgress, order.StatusReady,
		order.StatusShipped, order.StatusInTransit, order.StatusDelivered,
	}, func(s order.Status, _ int) string { return s.String() })
}
