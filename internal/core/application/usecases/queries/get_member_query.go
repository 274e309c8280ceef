package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrGetMemberQueryIsNotConstructed = errors.New(
	"GetMemberQuery must be created via NewGetMemberQuery constructor",
)

// GetMemberQuery retrieves a member profile. Members can read their own
// profile; administrators can read any.
type GetMemberQuery struct {
	memberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMemberQuery creates a profile query.
func NewGetMemberQuery(memberID kernel.UUID, principal auth.Principal) (GetMemberQuery, error) {
	if err := errors.Join(
		memberID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetMemberQuery{}, err
	}
	if !principal.IsOwnerOrAdmin(memberID) {
		return GetMemberQuery{}, errs.NewAccessDeniedError("read member profile")
	}

	return GetMemberQuery{
		memberID: memberID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMemberQuery) Validate() error {
	return q.guard.Validate(ErrGetMemberQueryIsNotConstructed)
}

// MemberID returns the identifier of the requested member.
func (q GetMemberQuery) MemberID() kernel.UUID {
	return q.memberID
}

// MemberResponse is a member profile view. The password hash is never exposed.
type MemberResponse struct {
	ID          kernel.UUID
	Username    string
	Email       string
	Name        string
	PhoneNumber string
	Address     string
	JoinDate    time.Time
	Grade       string
}
