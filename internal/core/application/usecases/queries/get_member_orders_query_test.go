package queries_test

import (
	"testing"

	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMemberOrdersQuery_Owner_Valid(t *testing.T) {
	memberID := kernel.NewUUID()

	query, err := queries.NewGetMemberOrdersQuery(memberID, userPrincipal(t, memberID))

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.MemberID().IsEqual(memberID))
}

func TestNewGetMemberOrdersQuery_Admin_Valid(t *testing.T) {
	_, err := queries.NewGetMemberOrdersQuery(kernel.NewUUID(), adminPrincipal(t))

	require.NoError(t, err)
}

func TestNewGetMemberOrdersQuery_OtherCustomer_ReturnsAccessDenied(t *testing.T) {
	_, err := queries.NewGetMemberOrdersQuery(kernel.NewUUID(),
		userPrincipal(t, kernel.NewUUID()))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestGetMemberOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMemberOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMemberOrdersQueryIsNotConstructed)
}
