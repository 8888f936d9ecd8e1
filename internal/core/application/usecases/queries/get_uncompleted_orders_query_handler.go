package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
)

// GetUncompletedOrdersQueryHandler reads in-flight orders from the database.
// Completed and cancelled orders are filtered out; everything else counts as
// active workload.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-flight order queries.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so the longest
// waiting orders surface at the top of the dashboard.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			document_type,
			city,
			service,
			delegate_id,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.StatusCompleted.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			status     string
			docType    string
			city       string
			service    string
			delegateID *uuid.UUID
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &status, &docType, &city, &service, &delegateID, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetUncompletedOrdersQueryResponse{
			ID:           orderID,
			Status:       status,
			DocumentType: docType,
			City:         city,
			Service:      service,
			CreatedAt:    createdAt,
		}

		if delegateID != nil {
			did, didErr := kernel.UUIDFromBytes(delegateID[:])
			if didErr != nil {
				return nil, didErr
			}
			resp.DelegateID = &did
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
