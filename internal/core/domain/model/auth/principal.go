// Package auth provides the authorization gate for the fruitmall core.
// A Principal is the authenticated actor performing an operation; every
// guarded use case takes one explicitly instead of reading ambient
// authentication state, which keeps the core testable without a request
// context.
package auth

import (
	"errors"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

// Role names carried by a principal. They mirror the values stored on the
// member record and embedded in access tokens.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through NewPrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal identifies the authenticated member acting on the system,
// together with the roles granted to them.
type Principal struct {
	memberID kernel.UUID
	username string
	roles    []string

	guard guard.ConstructorGuard
}

// NewPrincipal creates a principal for the given member. The member ID and
// username are required; roles may be empty (such a principal can only act on
// public resources).
func NewPrincipal(memberID kernel.UUID, username string, roles []string) (Principal, error) {
	if err := memberID.Validate(); err != nil {
		return Principal{}, err
	}
	if username == "" {
		return Principal{}, errs.NewValueIsRequiredError("username")
	}

	return Principal{
		memberID: memberID,
		username: username,
		roles:    append([]string(nil), roles...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the principal was created through the constructor.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// MemberID returns the identifier of the acting member.
func (p Principal) MemberID() kernel.UUID {
	return p.memberID
}

// Username returns the acting member's username.
func (p Principal) Username() string {
	return p.username
}

// Roles returns a copy of the roles granted to the principal.
func (p Principal) Roles() []string {
	return append([]string(nil), p.roles...)
}

// IsAdmin reports whether the principal carries the administrative role.
func (p Principal) IsAdmin() bool {
	for _, role := range p.roles {
		if role == RoleAdmin {
			return true
		}
	}
	return false
}

// IsOwner reports whether the principal is the member identified by ownerID.
func (p Principal) IsOwner(ownerID kernel.UUID) bool {
	return p.memberID.IsEqual(ownerID)
}

// IsOwnerOrAdmin reports whether either the ownership or the admin check
// passes. This is the gate applied to most member-scoped reads.
func (p Principal) IsOwnerOrAdmin(ownerID kernel.UUID) bool {
	return p.IsOwner(ownerID) || p.IsAdmin()
}
