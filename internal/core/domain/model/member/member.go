// Package member provides the Member aggregate: account identity, credentials,
// profile data, and the roles consumed by the authorization gate.
package member

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMemberIsNotConstructed is returned when a Member instance was not
	// created through NewMember or RestoreMember.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

	// ErrPasswordMismatch is returned when a supplied password does not match
	// the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// Member is the aggregate root for a customer account. Passwords are stored
// only as bcrypt hashes; the plain text never leaves the constructor.
type Member struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	name         string
	phoneNumber  string
	address      string
	joinDate     time.Time
	grade        Grade
	roles        []string

	isConstructed bool
}

// NewMember registers a new account. The password is hashed with bcrypt.
// New members start with the BRONZE grade and the ROLE_USER role.
func NewMember(id kernel.UUID, username, email, password, name, phoneNumber, address string,
	joinDate time.Time) (*Member, error) {
	if err := errors.Join(
		id.Validate(),
		requireField("username", username),
		requireField("email", email),
		requireField("password", password),
		requireField("name", name),
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Member{
		id:            id,
		username:      username,
		email:         email,
		passwordHash:  string(hash),
		name:          name,
		phoneNumber:   phoneNumber,
		address:       address,
		joinDate:      joinDate,
		grade:         Bronze,
		roles:         []string{auth.RoleUser},
		isConstructed: true,
	}, nil
}

// RestoreMember reconstructs a member from persistence. The password hash is
// taken as-is.
func RestoreMember(id kernel.UUID, username, email, passwordHash, name, phoneNumber, address string,
	joinDate time.Time, grade Grade, roles []string) (*Member, error) {
	if err := errors.Join(
		id.Validate(),
		requireField("username", username),
		requireField("email", email),
		requireField("passwordHash", passwordHash),
		grade.Validate(),
	); err != nil {
		return nil, err
	}

	return &Member{
		id:            id,
		username:      username,
		email:         email,
		passwordHash:  passwordHash,
		name:          name,
		phoneNumber:   phoneNumber,
		address:       address,
		joinDate:      joinDate,
		grade:         grade,
		roles:         append([]string(nil), roles...),
		isConstructed: true,
	}, nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate ensures the member was created through a constructor.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}
	return nil
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Username returns the member's login name.
func (m *Member) Username() string {
	return m.username
}

// Email returns the member's email address.
func (m *Member) Email() string {
	return m.email
}

// PasswordHash returns the stored bcrypt hash for persistence mapping.
func (m *Member) PasswordHash() string {
	return m.passwordHash
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// PhoneNumber returns the member's phone number.
func (m *Member) PhoneNumber() string {
	return m.phoneNumber
}

// Address returns the member's default address.
func (m *Member) Address() string {
	return m.address
}

// JoinDate returns the date the account was created.
func (m *Member) JoinDate() time.Time {
	return m.joinDate
}

// Grade returns the member's loyalty grade.
func (m *Member) Grade() Grade {
	return m.grade
}

// Roles returns a copy of the roles granted to the member.
func (m *Member) Roles() []string {
	return append([]string(nil), m.roles...)
}

// MatchPassword verifies a plain-text password against the stored hash.
// Returns ErrPasswordMismatch when they do not match.
func (m *Member) MatchPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ChangePassword replaces the stored hash with one for the new password.
func (m *Member) ChangePassword(newPassword string) error {
	if newPassword == "" {
		return errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.passwordHash = string(hash)
	return nil
}

// UpdateInfo overwrites the mutable profile fields.
func (m *Member) UpdateInfo(name, phoneNumber, address string) error {
	if err := requireField("name", name); err != nil {
		return err
	}
	m.name = name
	m.phoneNumber = phoneNumber
	m.address = address
	return nil
}

// UpdateGrade sets the member's loyalty grade.
func (m *Member) UpdateGrade(grade Grade) error {
	if err := grade.Validate(); err != nil {
		return err
	}
	m.grade = grade
	return nil
}

// AddAdminRole grants the administrative role. Adding it twice is a no-op.
func (m *Member) AddAdminRole() {
	for _, role := range m.roles {
		if role == auth.RoleAdmin {
			return
		}
	}
	m.roles = append(m.roles, auth.RoleAdmin)
}
