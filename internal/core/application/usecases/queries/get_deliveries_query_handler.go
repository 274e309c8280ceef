package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler lists deliveries with optional filters.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for the delivery listing.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle returns matching deliveries ordered by expected delivery date.
func (h GetDeliveriesQueryHandler) Handle(ctx context.Context,
	query GetDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := deliverySelect + " WHERE 1=1"
	args := make([]any, 0, 4)

	if query.Status() != delivery.UnknownStatus {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if !query.ExpectedFrom().IsZero() {
		sql += " AND expected_delivery_date >= ?"
		args = append(args, query.ExpectedFrom())
	}
	if !query.ExpectedTo().IsZero() {
		sql += " AND expected_delivery_date <= ?"
		args = append(args, query.ExpectedTo())
	}
	if query.TrackingNumber() != "" {
		sql += " AND tracking_number = ?"
		args = append(args, query.TrackingNumber())
	}
	sql += " ORDER BY expected_delivery_date, id"

	var rows []deliveryRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, resp)
	}

	return deliveries, nil
}
