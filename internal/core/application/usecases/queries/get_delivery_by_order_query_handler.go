package queries

import (
	"context"

	"fruitmall/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderQueryHandler reads the delivery attached to an order.
// Each order has at most one delivery.
type GetDeliveryByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderQueryHandler creates a handler for per-order delivery reads.
func NewGetDeliveryByOrderQueryHandler(db *gorm.DB) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{db: db}
}

// Handle returns the order's delivery tracking view.
func (h GetDeliveryByOrderQueryHandler) Handle(ctx context.Context,
	query GetDeliveryByOrderQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	resp, err := scanDelivery(h.db.WithContext(ctx).Raw(
		deliverySelect+" WHERE order_id = ?", query.OrderID().Bytes()))
	if err != nil {
		return DeliveryResponse{}, err
	}
	if resp.ID.Validate() != nil {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return resp, nil
}
