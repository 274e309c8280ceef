package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents a member changing their own password.
// The current password must be supplied and verified before the change.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	currentPassword string
	newPassword     string
	principal       auth.Principal

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to change the caller's password.
func NewChangePasswordCommand(currentPassword, newPassword string,
	principal auth.Principal) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireCommandField("currentPassword", currentPassword),
		requireCommandField("newPassword", newPassword),
		principal.Validate(),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	cmd.currentPassword = currentPassword
	cmd.newPassword = newPassword
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// CurrentPassword returns the password to verify before changing.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

// Principal returns the authenticated caller.
func (c ChangePasswordCommand) Principal() auth.Principal {
	return c.principal
}
