// Package invoicerepo provides data transfer objects and mapping functions for
// invoice persistence. The invoice row carries the full order payload captured
// at creation time, stored inline so a paid invoice can be materialized into an
// order without consulting any other table.
package invoicerepo

import (
	"encoding/json"
	"time"

	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoice aggregates.
// Reference is unique so a payment provider callback can always be resolved to
// exactly one invoice; order_id is unique so the database itself rules out two
// invoices claiming the same order.
type InvoiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Amount    int64     `gorm:"not null"`
	Status    string    `gorm:"type:varchar(32);index"`

	DocumentType   string `gorm:"type:varchar(255)"`
	Service        string `gorm:"type:varchar(64)"`
	City           string `gorm:"type:varchar(255)"`
	Copies         int    `gorm:""`
	TotalAmount    int64  `gorm:""`
	DelegatePayout int64  `gorm:""`
	ServiceFee     int64  `gorm:""`
	ShippingFee    int64  `gorm:""`
	Documents      []byte `gorm:"type:jsonb"`

	OrderID   *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt time.Time  `gorm:""`
	PaidAt    *time.Time `gorm:""`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// documentLineDTO is the jsonb element for one billing line.
type documentLineDTO struct {
	UnitPrice int64 `json:"unit_price"`
	Copies    int   `json:"copies"`
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, error) {
	payload := aggregate.Payload()

	documents, err := marshalDocuments(payload.Billing().Documents())
	if err != nil {
		return InvoiceDTO{}, err
	}

	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return InvoiceDTO{
		ID:             aggregate.ID().Bytes(),
		Reference:      aggregate.Reference(),
		OwnerID:        aggregate.OwnerID().Bytes(),
		Amount:         aggregate.Amount(),
		Status:         aggregate.Status().String(),
		DocumentType:   payload.DocumentType(),
		Service:        payload.Service().String(),
		City:           payload.City().Name(),
		Copies:         payload.Copies(),
		TotalAmount:    payload.TotalAmount(),
		DelegatePayout: payload.DelegatePayout(),
		ServiceFee:     payload.Billing().ServiceFee(),
		ShippingFee:    payload.Billing().ShippingFee(),
		Documents:      documents,
		OrderID:        orderID,
		CreatedAt:      aggregate.CreatedAt(),
		PaidAt:         aggregate.PaidAt(),
	}, nil
}

// toDomain converts a database DTO to an invoice domain aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	service, err := kernel.ServiceCategoryFromString(dto.Service)
	if err != nil {
		return nil, err
	}

	city, err := kernel.NewCity(dto.City)
	if err != nil {
		return nil, err
	}

	documents, err := unmarshalDocuments(dto.Documents)
	if err != nil {
		return nil, err
	}

	billing, err := order.NewBillingBreakdown(documents, dto.ServiceFee, dto.ShippingFee)
	if err != nil {
		return nil, err
	}

	payload, err := invoice.NewOrderPayload(
		dto.DocumentType,
		service,
		city,
		dto.Copies,
		dto.TotalAmount,
		dto.DelegatePayout,
		billing,
	)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return invoice.RestoreInvoice(invoice.RestoreInvoiceParams{
		ID:        id,
		Reference: dto.Reference,
		OwnerID:   ownerID,
		Amount:    dto.Amount,
		Status:    status,
		Payload:   payload,
		OrderID:   orderID,
		CreatedAt: dto.CreatedAt,
		PaidAt:    dto.PaidAt,
	})
}

func marshalDocuments(lines []order.DocumentLine) ([]byte, error) {
	dtos := make([]documentLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, documentLineDTO{
			UnitPrice: line.UnitPrice,
			Copies:    line.Copies,
		})
	}
	return json.Marshal(dtos)
}

func unmarshalDocuments(raw []byte) ([]order.DocumentLine, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var dtos []documentLineDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	lines := make([]order.DocumentLine, 0, len(dtos))
	for _, dto := range dtos {
		lines = append(lines, order.DocumentLine{
			UnitPrice: dto.UnitPrice,
			Copies:    dto.Copies,
		})
	}
	return lines, nil
}
