package queries

import (
	"context"
	"database/sql"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order. Non-admin callers get an access denied error for
// orders they do not own.
func (h GetOrderQueryHandler) Handle(ctx context.Context,
	query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var header struct {
		ID            uuid.UUID
		MemberID      uuid.UUID
		OrderDate     sql.NullTime
		PaymentMethod string
		Status        string
		TotalPrice    decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, member_id, order_date, payment_method, status, total_price
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&header).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if header.ID == uuid.Nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	memberID, err := kernel.UUIDFromBytes(header.MemberID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !query.Principal().IsOwnerOrAdmin(memberID) {
		return GetOrderQueryResponse{}, errs.NewAccessDeniedError("read order")
	}

	orderID, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:            orderID,
		MemberID:      memberID,
		OrderDate:     header.OrderDate.Time,
		PaymentMethod: header.PaymentMethod,
		Status:        header.Status,
		TotalPrice:    header.TotalPrice,
		Details:       make([]OrderDetailResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, d.fruit_id, COALESCE(f.name, ''), d.quantity, d.unit_price
		FROM order_details d
		LEFT JOIN fruits f ON f.id = d.fruit_id
		WHERE d.order_id = ?
		ORDER BY d.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail OrderDetailResponse
		var detailID, fruitID uuid.UUID

		if err = rows.Scan(&detailID, &fruitID, &detail.FruitName, &detail.Quantity,
			&detail.UnitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}

		if detail.ID, err = kernel.UUIDFromBytes(detailID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if detail.FruitID, err = kernel.UUIDFromBytes(fruitID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.Details = append(resp.Details, detail)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
