// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"fruitmall/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MemberRepoFactory provides access to the member repository within a transaction.
	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	// FruitRepoFactory provides access to the fruit repository within a transaction.
	FruitRepoFactory interface {
		FruitRepository() ports.FruitRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// WishlistRepoFactory provides access to the wishlist repository within a transaction.
	WishlistRepoFactory interface {
		WishlistRepository() ports.WishlistRepository
	}

	// MemberUoW manages transactions for member-only operations.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	// MemberUoWFactory creates new member unit of work instances.
	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// FruitUoW manages transactions for catalog maintenance operations.
	FruitUoW interface {
		TxManager
		FruitRepoFactory
		CategoryRepoFactory
	}

	// FruitUoWFactory creates new catalog unit of work instances.
	FruitUoWFactory interface {
		Create() FruitUoW
	}

	// OrderUoW manages transactions for order operations. Orders touch the
	// member placing them and the fruits whose stock they move, so all three
	// repositories share one transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		FruitRepoFactory
		MemberRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages transactions for delivery operations. Delivery
	// status changes propagate into the order, and order cancellation
	// restores fruit stock, so all three repositories share one transaction.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		FruitRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CartUoW manages transactions for cart operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
		FruitRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// ReviewUoW manages transactions for review operations.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// WishlistUoW manages transactions for wishlist operations.
	WishlistUoW interface {
		TxManager
		WishlistRepoFactory
		FruitRepoFactory
	}

	// WishlistUoWFactory creates new wishlist unit of work instances.
	WishlistUoWFactory interface {
		Create() WishlistUoW
	}
)
