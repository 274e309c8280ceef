package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMemberOrdersQueryHandler lists a member's orders.
type GetMemberOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMemberOrdersQueryHandler creates a handler for order history reads.
func NewGetMemberOrdersQueryHandler(db *gorm.DB) GetMemberOrdersQueryHandler {
	return GetMemberOrdersQueryHandler{db: db}
}

// Handle returns the member's orders, newest first. An empty slice means the
// member has not ordered yet.
func (h GetMemberOrdersQueryHandler) Handle(ctx context.Context,
	query GetMemberOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.member_id, o.order_date, o.payment_method, o.status, o.total_price,
		       (SELECT COUNT(*) FROM order_details d WHERE d.order_id = o.id)
		FROM orders o
		WHERE o.member_id = ?
		ORDER BY o.order_date DESC
	`, query.MemberID().Bytes()).Rows()
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
