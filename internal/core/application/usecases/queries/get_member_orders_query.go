package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMemberOrdersQueryIsNotConstructed = errors.New(
	"GetMemberOrdersQuery must be created via NewGetMemberOrdersQuery constructor",
)

// GetMemberOrdersQuery lists the order history of one member, newest first.
type GetMemberOrdersQuery struct {
	memberID  kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetMemberOrdersQuery creates a query for a member's order history.
// Only the member themselves or an administrator may run it.
func NewGetMemberOrdersQuery(memberID kernel.UUID,
	principal auth.Principal) (GetMemberOrdersQuery, error) {
	if err := errors.Join(
		memberID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetMemberOrdersQuery{}, err
	}
	if !principal.IsOwnerOrAdmin(memberID) {
		return GetMemberOrdersQuery{}, errs.NewAccessDeniedError("read member orders")
	}

	return GetMemberOrdersQuery{
		memberID:  memberID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMemberOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMemberOrdersQueryIsNotConstructed)
}

// MemberID returns the member whose orders are requested.
func (q GetMemberOrdersQuery) MemberID() kernel.UUID {
	return q.memberID
}

// OrderSummaryResponse is one row of an order listing. Lines are not loaded;
// clients fetch them per order when needed.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	MemberID      kernel.UUID
	OrderDate     time.Time
	PaymentMethod string
	Status        string
	TotalPrice    decimal.Decimal
	LineCount     int
}
