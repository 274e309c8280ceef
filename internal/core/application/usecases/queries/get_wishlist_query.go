package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWishlistQueryIsNotConstructed = errors.New(
	"GetWishlistQuery must be created via NewGetWishlistQuery constructor",
)

// GetWishlistQuery lists the caller's own wishlist.
type GetWishlistQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetWishlistQuery creates a query for the caller's wishlist.
func NewGetWishlistQuery(principal auth.Principal) (GetWishlistQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetWishlistQuery{}, err
	}

	return GetWishlistQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWishlistQuery) Validate() error {
	return q.guard.Validate(ErrGetWishlistQueryIsNotConstructed)
}

// MemberID returns the wishlist owner, taken from the principal.
func (q GetWishlistQuery) MemberID() kernel.UUID {
	return q.principal.MemberID()
}

// WishlistItemResponse is one wishlist entry with current catalog data.
type WishlistItemResponse struct {
	ID        kernel.UUID
	FruitID   kernel.UUID
	FruitName string
	Price     decimal.Decimal
	InStock   bool
	AddedAt   time.Time
}
