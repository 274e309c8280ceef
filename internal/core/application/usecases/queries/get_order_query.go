// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read from the database directly, bypassing repositories and
// aggregates, and return flat response structs shaped for the API.
package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines. Customers can read
// only their own orders; administrators can read any.
type GetOrderQuery struct {
	orderID   kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID, principal auth.Principal) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the authenticated caller.
func (q GetOrderQuery) Principal() auth.Principal {
	return q.principal
}

// OrderDetailResponse is one line of an order as read by queries.
type OrderDetailResponse struct {
	ID        kernel.UUID
	FruitID   kernel.UUID
	FruitName string
	Quantity  int
	UnitPrice decimal.Decimal
}

// GetOrderQueryResponse is a full order view: header plus lines.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	MemberID      kernel.UUID
	OrderDate     time.Time
	PaymentMethod string
	Status        string
	TotalPrice    decimal.Decimal
	Details       []OrderDetailResponse
}
