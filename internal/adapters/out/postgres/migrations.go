package postgres

import (
	"fruitmall/internal/adapters/out/postgres/cartrepo"
	"fruitmall/internal/adapters/out/postgres/deliveryrepo"
	"fruitmall/internal/adapters/out/postgres/fruitrepo"
	"fruitmall/internal/adapters/out/postgres/memberrepo"
	"fruitmall/internal/adapters/out/postgres/orderrepo"
	"fruitmall/internal/adapters/out/postgres/reviewrepo"
	"fruitmall/internal/adapters/out/postgres/wishlistrepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates the tables for every aggregate.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&fruitrepo.CategoryDTO{},
		&fruitrepo.FruitDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&deliveryrepo.DeliveryDTO{},
		&cartrepo.CartItemDTO{},
		&reviewrepo.ReviewDTO{},
		&wishlistrepo.WishlistItemDTO{},
	)
}
