package queries_test

import (
	"testing"
	"time"

	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_AdminWithoutFilters_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(order.UnknownStatus, time.Time{}, time.Time{},
		adminPrincipal(t))

	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersQuery_AdminWithFilters_Valid(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query, err := queries.NewGetOrdersQuery(order.Pending, from, to, adminPrincipal(t))

	require.NoError(t, err)
	assert.Equal(t, order.Pending, query.Status())
}

func TestNewGetOrdersQuery_Customer_ReturnsAccessDenied(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(order.UnknownStatus, time.Time{}, time.Time{},
		userPrincipal(t, kernel.NewUUID()))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestNewGetOrdersQuery_RangeEndBeforeStart_ReturnsError(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := queries.NewGetOrdersQuery(order.UnknownStatus, from, to, adminPrincipal(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
