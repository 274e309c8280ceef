// Package cartrepo persists the CartItem aggregate.
package cartrepo

import (
	"fruitmall/internal/core/domain/model/cart"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO is the database representation of a cart line. A member holds
// at most one line per fruit, enforced by the composite unique index.
type CartItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_member_fruit"`
	FruitID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_member_fruit"`
	Quantity int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(c *cart.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:       c.ID().Bytes(),
		MemberID: c.MemberID().Bytes(),
		FruitID:  c.FruitID().Bytes(),
		Quantity: c.Quantity(),
	}
}

func toDomain(dto CartItemDTO) (*cart.CartItem, error) {
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

	return cart.RestoreCartItem(id, memberID, fruitID, dto.Quantity)
}
