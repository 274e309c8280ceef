package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateMemberInfoCommandIsNotConstructed = errors.New(
	"UpdateMemberInfoCommand must be created via NewUpdateMemberInfoCommand constructor",
)

// UpdateMemberInfoCommand represents a member updating their own profile.
type UpdateMemberInfoCommand struct { //nolint:recvcheck //using for validation
	name        string
	phoneNumber string
	address     string
	principal   auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateMemberInfoCommand creates a command to update profile fields.
func NewUpdateMemberInfoCommand(name, phoneNumber, address string,
	principal auth.Principal) (UpdateMemberInfoCommand, error) {
	cmd := UpdateMemberInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireCommandField("name", name),
		principal.Validate(),
	); err != nil {
		return UpdateMemberInfoCommand{}, err
	}

	cmd.name = name
	cmd.phoneNumber = phoneNumber
	cmd.address = address
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMemberInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMemberInfoCommandIsNotConstructed)
}

// Name returns the new display name.
func (c UpdateMemberInfoCommand) Name() string {
	return c.name
}

// PhoneNumber returns the new phone number.
func (c UpdateMemberInfoCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the new default address.
func (c UpdateMemberInfoCommand) Address() string {
	return c.address
}

// Principal returns the authenticated caller.
func (c UpdateMemberInfoCommand) Principal() auth.Principal {
	return c.principal
}
