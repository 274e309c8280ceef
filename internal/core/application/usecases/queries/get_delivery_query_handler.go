package queries

import (
	"context"
	"database/sql"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads a delivery by its identifier.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for delivery reads.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns the delivery tracking view.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context,
	query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	resp, err := scanDelivery(h.db.WithContext(ctx).Raw(
		deliverySelect+" WHERE id = ?", query.DeliveryID().Bytes()))
	if err != nil {
		return DeliveryResponse{}, err
	}
	if resp.ID.Validate() != nil {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryID", query.DeliveryID())
	}

	return resp, nil
}

const deliverySelect = `
	SELECT id, order_id, recipient, zip_code, address1, address2, phone_number,
	       delivery_request, status, tracking_number, courier_company,
	       expected_delivery_date, actual_delivery_date
	FROM deliveries`

// deliveryRow matches the columns of deliverySelect.
type deliveryRow struct {
	ID                   uuid.UUID
	OrderID              uuid.UUID
	Recipient            string
	ZipCode              string
	Address1             string
	Address2             string
	PhoneNumber          string
	DeliveryRequest      string
	Status               string
	TrackingNumber       string
	CourierCompany       string
	ExpectedDeliveryDate sql.NullTime
	ActualDeliveryDate   sql.NullTime
}

func (r deliveryRow) toResponse() (DeliveryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return DeliveryResponse{}, err
	}

	resp := DeliveryResponse{
		ID:      id,
		OrderID: orderID,
		Address: DeliveryAddressResponse{
			Recipient:       r.Recipient,
			ZipCode:         r.ZipCode,
			Address1:        r.Address1,
			Address2:        r.Address2,
			PhoneNumber:     r.PhoneNumber,
			DeliveryRequest: r.DeliveryRequest,
		},
		Status:               r.Status,
		TrackingNumber:       r.TrackingNumber,
		CourierCompany:       r.CourierCompany,
		ExpectedDeliveryDate: r.ExpectedDeliveryDate.Time,
	}
	if r.ActualDeliveryDate.Valid {
		actual := r.ActualDeliveryDate.Time
		resp.ActualDeliveryDate = &actual
	}

	return resp, nil
}

// scanDelivery maps a single delivery row. A missing row yields a response
// with a zero ID and no error; callers translate that into a not-found error
// named after the identifier they looked up by.
func scanDelivery(tx *gorm.DB) (DeliveryResponse, error) {
	var row deliveryRow
	if err := tx.Scan(&row).Error; err != nil {
		return DeliveryResponse{}, err
	}
	if row.ID == uuid.Nil {
		return DeliveryResponse{}, nil
	}

	return row.toResponse()
}
