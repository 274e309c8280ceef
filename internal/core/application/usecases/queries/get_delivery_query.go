package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a delivery by its identifier. Delivery reads are
// public so that recipients who are not the buyer can track a shipment.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for one delivery.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the requested delivery.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// DeliveryAddressResponse is the destination of a shipment as read by queries.
type DeliveryAddressResponse struct {
	Recipient       string
	ZipCode         string
	Address1        string
	Address2        string
	PhoneNumber     string
	DeliveryRequest string
}

// DeliveryResponse is the tracking view of a delivery.
type DeliveryResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	Address              DeliveryAddressResponse
	Status               string
	TrackingNumber       string
	CourierCompany       string
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
}
