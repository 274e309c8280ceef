package queries_test

import (
	"testing"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// mockAggregateTracker satisfies the tracker dependency of the GORM
// repositories used to seed data for query handler tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

func userPrincipal(t *testing.T, memberID kernel.UUID) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(memberID, "customer", []string{auth.RoleUser})
	require.NoError(t, err)
	return p
}

func adminPrincipal(t *testing.T) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), "admin", []string{auth.RoleAdmin})
	require.NoError(t, err)
	return p
}
