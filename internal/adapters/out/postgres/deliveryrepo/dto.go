// Package deliveryrepo persists the Delivery aggregate.
package deliveryrepo

import (
	"time"

	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database representation of a delivery. Each order has at
// most one delivery, enforced by the unique index on OrderID.
type DeliveryDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Recipient            string    `gorm:"not null"`
	ZipCode              string    `gorm:"not null"`
	Address1             string    `gorm:"not null"`
	Address2             string
	PhoneNumber          string `gorm:"not null"`
	DeliveryRequest      string
	Status               string `gorm:"index;not null"`
	TrackingNumber       string `gorm:"index"`
	CourierCompany       string
	ExpectedDeliveryDate time.Time `gorm:"index"`
	ActualDeliveryDate   *time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                   d.ID().Bytes(),
		OrderID:              d.OrderID().Bytes(),
		Recipient:            d.Address().Recipient(),
		ZipCode:              d.Address().ZipCode(),
		Address1:             d.Address().Address1(),
		Address2:             d.Address().Address2(),
		PhoneNumber:          d.Address().PhoneNumber(),
		DeliveryRequest:      d.Address().DeliveryRequest(),
		Status:               d.Status().String(),
		TrackingNumber:       d.TrackingNumber(),
		CourierCompany:       d.CourierCompany(),
		ExpectedDeliveryDate: d.ExpectedDeliveryDate(),
		ActualDeliveryDate:   d.ActualDeliveryDate(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := delivery.NewAddress(dto.Recipient, dto.ZipCode, dto.Address1,
		dto.Address2, dto.PhoneNumber, dto.DeliveryRequest)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, status, address,
		dto.CourierCompany, dto.TrackingNumber,
		dto.ExpectedDeliveryDate, dto.ActualDeliveryDate)
}
