package queries

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery lists the caller's own cart.
type GetCartQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the caller's cart.
func NewGetCartQuery(principal auth.Principal) (GetCartQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// MemberID returns the cart owner, taken from the principal.
func (q GetCartQuery) MemberID() kernel.UUID {
	return q.principal.MemberID()
}

// CartItemResponse is one cart line with current catalog data joined in.
// UnitPrice and StockQuantity reflect the catalog now, not the moment the
// item was added; checkout re-reads both under lock.
type CartItemResponse struct {
	ID            kernel.UUID
	FruitID       kernel.UUID
	FruitName     string
	Quantity      int
	UnitPrice     decimal.Decimal
	StockQuantity int
}
