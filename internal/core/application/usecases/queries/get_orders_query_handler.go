package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders across all members for administrators.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the administrative listing.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns matching orders, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context,
	query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT o.id, o.member_id, o.order_date, o.payment_method, o.status, o.total_price,
		       (SELECT COUNT(*) FROM order_details d WHERE d.order_id = o.id)
		FROM orders o
		WHERE 1=1`
	args := make([]any, 0, 3)

	if query.Status() != order.UnknownStatus {
		sql += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	if !query.From().IsZero() {
		sql += " AND o.order_date >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += " AND o.order_date <= ?"
		args = append(args, query.To())
	}
	sql += " ORDER BY o.order_date DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var summary OrderSummaryResponse
		var orderID, memberID uuid.UUID

		if err = rows.Scan(&orderID, &memberID, &summary.OrderDate, &summary.PaymentMethod,
			&summary.Status, &summary.TotalPrice, &summary.LineCount); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if summary.MemberID, err = kernel.UUIDFromBytes(memberID[:]); err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
