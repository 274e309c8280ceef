// Package wishlistrepo persists the WishlistItem aggregate.
package wishlistrepo

import (
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/wishlist"

	"github.com/google/uuid"
)

// WishlistItemDTO is the database representation of a wishlist entry. A
// member lists each fruit at most once, enforced by the composite unique index.
type WishlistItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_member_fruit"`
	FruitID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_member_fruit"`
	AddedAt  time.Time
}

// TableName overrides GORM's default naming to use "wishlist_items".
func (WishlistItemDTO) TableName() string {
	return "wishlist_items"
}

func fromDomain(w *wishlist.WishlistItem) WishlistItemDTO {
	return WishlistItemDTO{
		ID:       w.ID().Bytes(),
		MemberID: w.MemberID().Bytes(),
		FruitID:  w.FruitID().Bytes(),
		AddedAt:  w.AddedAt(),
	}
}

func toDomain(dto WishlistItemDTO) (*wishlist.WishlistItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	fruitID, err := kernel.UUIDFromBytes(dto.FruitID[:])
	if err != nil {
		return nil, err
	}

	return wishlist.RestoreWishlistItem(id, memberID, fruitID, dto.AddedAt)
}
