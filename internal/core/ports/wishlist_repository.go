package ports

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/wishlist"
)

// WishlistRepositoryFactory creates WishlistRepository bound to the current
// transaction.
type WishlistRepositoryFactory interface {
	WishlistRepository() WishlistRepository
}

// WishlistRepository persists the WishlistItem aggregate.
type WishlistRepository interface {
	Add(ctx context.Context, aggregate *wishlist.WishlistItem) error
	Get(ctx context.Context, id kernel.UUID) (*wishlist.WishlistItem, error)
	GetByMemberAndFruit(ctx context.Context, memberID, fruitID kernel.UUID) (*wishlist.WishlistItem, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
