// Package orderrepo persists the Order aggregate together with its lines.
// The order header and its details map to separate tables; details are
// written once at creation and never change afterwards.
package orderrepo

import (
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order header.
type OrderDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	MemberID      uuid.UUID        `gorm:"type:uuid;index"`
	OrderDate     time.Time        `gorm:"index"`
	PaymentMethod string           `gorm:"not null"`
	Status        string           `gorm:"index;not null"`
	TotalPrice    decimal.Decimal  `gorm:"type:numeric(12,2)"`
	Details       []OrderDetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO is one order line. The unit price is a snapshot taken at
// checkout; later catalog price changes do not touch it.
type OrderDetailDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	FruitID   uuid.UUID       `gorm:"type:uuid;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "order_details".
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

func fromDomain(o *order.Order) OrderDTO {
	details := make([]OrderDetailDTO, 0, len(o.Details()))
	for _, d := range o.Details() {
		details = append(details, OrderDetailDTO{
			ID:        d.ID().Bytes(),
			OrderID:   o.ID().Bytes(),
			FruitID:   d.FruitID().Bytes(),
			Quantity:  d.Quantity(),
			UnitPrice: d.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		MemberID:      o.MemberID().Bytes(),
		OrderDate:     o.OrderDate(),
		PaymentMethod: o.PaymentMethod(),
		Status:        o.Status().String(),
		TotalPrice:    o.TotalPrice().Decimal(),
		Details:       details,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	details := make([]order.Detail, 0, len(dto.Details))
	for _, d := range dto.Details {
		detail, err := detailToDomain(d)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(id, memberID, dto.OrderDate, dto.PaymentMethod, status, details)
}

func detailToDomain(dto OrderDetailDTO) (order.Detail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Detail{}, err
	}

	fruitID, err := kernel.UUIDFromBytes(dto.FruitID[:])
	if err != nil {
		return order.Detail{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Detail{}, err
	}

	return order.NewDetail(id, fruitID, dto.Quantity, unitPrice)
}
