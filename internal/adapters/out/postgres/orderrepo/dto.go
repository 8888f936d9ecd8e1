// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows,
// including the itemized billing breakdown stored as a jsonb column.
package orderrepo

import (
	"encoding/json"
	"time"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by name rather than ordinal so rows stay readable and the
// dispatch guard can be expressed as a plain SQL predicate. Indexed on status
// and delegate assignment for the dispatch and board queries.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID  `gorm:"type:uuid;index"`
	DocumentType   string     `gorm:"type:varchar(255)"`
	Service        string     `gorm:"type:varchar(64)"`
	City           string     `gorm:"type:varchar(255)"`
	Copies         int        `gorm:""`
	TotalAmount    int64      `gorm:""`
	DelegatePayout int64      `gorm:""`
	ServiceFee     int64      `gorm:""`
	ShippingFee    int64      `gorm:""`
	Documents      []byte     `gorm:"type:jsonb"`
	DelegateID     *uuid.UUID `gorm:"type:uuid;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`
	Status         string     `gorm:"type:varchar(32);index"`

	Delivery DeliveryInfoDTO  `gorm:"embedded;embeddedPrefix:delivery_"`
	Proof    ShipmentProofDTO `gorm:"embedded;embeddedPrefix:proof_"`

	CreatedAt   time.Time  `gorm:""`
	AssignedAt  *time.Time `gorm:""`
	StartedAt   *time.Time `gorm:""`
	ReadyAt     *time.Time `gorm:""`
	ShippedAt   *time.Time `gorm:""`
	InTransitAt *time.Time `gorm:""`
	DeliveredAt *time.Time `gorm:""`
	CompletedAt *time.Time `gorm:""`
	CancelledAt *time.Time `gorm:""`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryInfoDTO represents the embedded recipient details within the order table.
// All columns are empty until the delegate collects them; a non-empty code marks
// the value as present, since the domain never accepts an empty delivery code.
type DeliveryInfoDTO struct {
	RecipientName  string `gorm:"type:varchar(255)"`
	RecipientPhone string `gorm:"type:varchar(64)"`
	Address        string `gorm:"type:varchar(512)"`
	Code           string `gorm:"type:varchar(16)"`
}

// ShipmentProofDTO represents the embedded shipment evidence within the order
// table. Recorded when the delegate ships the documents; a non-empty tracking
// code marks the value as present.
type ShipmentProofDTO struct {
	TransportCompany string `gorm:"type:varchar(255)"`
	TrackingCode     string `gorm:"type:varchar(255)"`
	ReceiptRef       string `gorm:"type:varchar(512)"`
}

// documentLineDTO is the jsonb element for one billing line.
type documentLineDTO struct {
	UnitPrice int64 `json:"unit_price"`
	Copies    int   `json:"copies"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	documents, err := marshalDocuments(aggregate.Billing().Documents())
	if err != nil {
		return OrderDTO{}, err
	}

	var delivery DeliveryInfoDTO
	if info := aggregate.DeliveryInfo(); info != nil {
		delivery = DeliveryInfoDTO{
			RecipientName:  info.RecipientName(),
			RecipientPhone: info.RecipientPhone(),
			Address:        info.Address(),
			Code:           info.DeliveryCode(),
		}
	}

	var proof ShipmentProofDTO
	if p := aggregate.Proof(); p != nil {
		proof = ShipmentProofDTO{
			TransportCompany: p.TransportCompany(),
			TrackingCode:     p.TrackingCode(),
			ReceiptRef:       p.ReceiptRef(),
		}
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OwnerID:        aggregate.OwnerID().Bytes(),
		DocumentType:   aggregate.DocumentType(),
		Service:        aggregate.Service().String(),
		City:           aggregate.City().Name(),
		Copies:         aggregate.Copies(),
		TotalAmount:    aggregate.TotalAmount(),
		DelegatePayout: aggregate.DelegatePayout(),
		ServiceFee:     aggregate.Billing().ServiceFee(),
		ShippingFee:    aggregate.Billing().ShippingFee(),
		Documents:      documents,
		DelegateID:     optionalUUID(aggregate.Delegate()),
		CourierID:      optionalUUID(aggregate.Courier()),
		Status:         aggregate.Status().String(),
		Delivery:       delivery,
		Proof:          proof,
		CreatedAt:      aggregate.CreatedAt(),
		AssignedAt:     aggregate.AssignedAt(),
		StartedAt:      aggregate.StartedAt(),
		ReadyAt:        aggregate.ReadyAt(),
		ShippedAt:      aggregate.ShippedAt(),
		InTransitAt:    aggregate.InTransitAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CompletedAt:    aggregate.CompletedAt(),
		CancelledAt:    aggregate.CancelledAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// RestoreOrder re-validates the construction invariants, so a corrupt row
// surfaces as an error rather than an invalid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
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

	status, err := order.StatusFromString(dto.Status)
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

	delegateID, err := optionalKernelUUID(dto.DelegateID)
	if err != nil {
		return nil, err
	}

	courierID, err := optionalKernelUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	var deliveryInfo *order.DeliveryInfo
	if dto.Delivery.Code != "" {
		info, infoErr := order.NewDeliveryInfo(
			dto.Delivery.RecipientName,
			dto.Delivery.RecipientPhone,
			dto.Delivery.Address,
			dto.Delivery.Code,
		)
		if infoErr != nil {
			return nil, infoErr
		}
		deliveryInfo = &info
	}

	var proof *order.ShipmentProof
	if dto.Proof.TrackingCode != "" {
		p, proofErr := order.NewShipmentProof(
			dto.Proof.TransportCompany,
			dto.Proof.TrackingCode,
			dto.Proof.ReceiptRef,
		)
		if proofErr != nil {
			return nil, proofErr
		}
		proof = &p
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		OwnerID:        ownerID,
		DocumentType:   dto.DocumentType,
		Service:        service,
		City:           city,
		Copies:         dto.Copies,
		TotalAmount:    dto.TotalAmount,
		DelegatePayout: dto.DelegatePayout,
		Billing:        billing,
		DelegateID:     delegateID,
		CourierID:      courierID,
		Status:         status,
		DeliveryInfo:   deliveryInfo,
		Proof:          proof,
		CreatedAt:      dto.CreatedAt,
		AssignedAt:     dto.AssignedAt,
		StartedAt:      dto.StartedAt,
		ReadyAt:        dto.ReadyAt,
		ShippedAt:      dto.ShippedAt,
		InTransitAt:    dto.InTransitAt,
		DeliveredAt:    dto.DeliveredAt,
		CompletedAt:    dto.CompletedAt,
		CancelledAt:    dto.CancelledAt,
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

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil //absence of an optional reference
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
