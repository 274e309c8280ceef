package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler lists a member's cart.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the caller's cart lines. Lines whose fruit has been removed
// from the catalog are skipped.
func (h GetCartQueryHandler) Handle(ctx context.Context,
	query GetCartQuery) ([]CartItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.id, i.fruit_id, f.name, i.quantity, f.price, f.stock_quantity
		FROM cart_items i
		JOIN fruits f ON f.id = i.fruit_id
		WHERE i.member_id = ?
		ORDER BY f.name
	`, query.MemberID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItemResponse, 0)
	for rows.Next() {
		var item CartItemResponse
		var itemID, fruitID uuid.UUID

		if err = rows.Scan(&itemID, &fruitID, &item.FruitName, &item.Quantity,
			&item.UnitPrice, &item.StockQuantity); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.FruitID, err = kernel.UUIDFromBytes(fruitID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
