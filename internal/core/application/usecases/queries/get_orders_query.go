package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery is the administrative order listing. It supports optional
// filtering by status and by order date range; zero-value filters are ignored.
type GetOrdersQuery struct {
	status order.Status
	from   time.Time
	to     time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. Pass order.UnknownStatus
// to skip the status filter and zero times to skip the date bounds.
func NewGetOrdersQuery(status order.Status, from, to time.Time,
	principal auth.Principal) (GetOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if !principal.IsAdmin() {
		return GetOrdersQuery{}, errs.NewAccessDeniedError("list all orders")
	}
	if status != order.UnknownStatus {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			errors.New("date range end precedes its start"))
	}

	return GetOrdersQuery{
		status: status,
		from:   from,
		to:     to,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or order.UnknownStatus for no filter.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// From returns the inclusive lower bound on the order date.
func (q GetOrdersQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound on the order date.
func (q GetOrdersQuery) To() time.Time {
	return q.to
}
