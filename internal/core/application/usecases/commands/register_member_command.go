package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrRegisterMemberCommandIsNotConstructed = errors.New(
	"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
)

// RegisterMemberCommand represents a sign-up request. This is the one
// command that carries no principal: the caller does not have an account yet.
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	memberID    kernel.UUID
	username    string
	email       string
	password    string
	name        string
	phoneNumber string
	address     string

	guard guard.ConstructorGuard
}

// NewRegisterMemberCommand creates a command to register a new member.
func NewRegisterMemberCommand(memberID kernel.UUID, username, email, password, name,
	phoneNumber, address string) (RegisterMemberCommand, error) {
	cmd := RegisterMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		memberID.Validate(),
		requireCommandField("username", username),
		requireCommandField("email", email),
		requireCommandField("password", password),
		requireCommandField("name", name),
	); err != nil {
		return RegisterMemberCommand{}, err
	}

	cmd.memberID = memberID
	cmd.username = username
	cmd.email = email
	cmd.password = password
	cmd.name = name
	cmd.phoneNumber = phoneNumber
	cmd.address = address
	return cmd, nil
}

func requireCommandField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

// MemberID returns the unique identifier for the new member.
func (c RegisterMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Username returns the requested login name.
func (c RegisterMemberCommand) Username() string {
	return c.username
}

// Email returns the member's email address.
func (c RegisterMemberCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to be hashed.
func (c RegisterMemberCommand) Password() string {
	return c.password
}

// Name returns the member's display name.
func (c RegisterMemberCommand) Name() string {
	return c.name
}

// PhoneNumber returns the member's phone number.
func (c RegisterMemberCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the member's default address.
func (c RegisterMemberCommand) Address() string {
	return c.address
}
