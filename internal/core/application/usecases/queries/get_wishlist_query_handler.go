package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWishlistQueryHandler lists a member's wishlist.
type GetWishlistQueryHandler struct {
	db *gorm.DB
}

// NewGetWishlistQueryHandler creates a handler for wishlist reads.
func NewGetWishlistQueryHandler(db *gorm.DB) GetWishlistQueryHandler {
	return GetWishlistQueryHandler{db: db}
}

// Handle returns the caller's wishlist, most recently added first.
func (h GetWishlistQueryHandler) Handle(ctx context.Context,
	query GetWishlistQuery) ([]WishlistItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT w.id, w.fruit_id, f.name, f.price, f.stock_quantity > 0, w.added_at
		FROM wishlist_items w
		JOIN fruits f ON f.id = w.fruit_id
		WHERE w.member_id = ?
		ORDER BY w.added_at DESC
	`, query.MemberID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]WishlistItemResponse, 0)
	for rows.Next() {
		var item WishlistItemResponse
		var itemID, fruitID uuid.UUID

		if err = rows.Scan(&itemID, &fruitID, &item.FruitName, &item.Price,
			&item.InStock, &item.AddedAt); err != nil {
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
