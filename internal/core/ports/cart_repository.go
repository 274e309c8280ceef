package ports

import (
	"context"

	"fruitmall/internal/core/domain/model/cart"
	"fruitmall/internal/core/domain/model/kernel"
)

// CartRepositoryFactory creates CartRepository bound to the current
// transaction.
type CartRepositoryFactory interface {
	CartRepository() CartRepository
}

// CartRepository persists the CartItem aggregate.
type CartRepository interface {
	Add(ctx context.Context, aggregate *cart.CartItem) error
	Update(ctx context.Context, aggregate *cart.CartItem) error
	Get(ctx context.Context, id kernel.UUID) (*cart.CartItem, error)
	GetByMemberAndFruit(ctx context.Context, memberID, fruitID kernel.UUID) (*cart.CartItem, error)
	Delete(ctx context.Context, id kernel.UUID) error
	DeleteAllByMember(ctx context.Context, memberID kernel.UUID) error
}
