package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a member emptying their own cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the caller's cart.
func NewClearCartCommand(principal auth.Principal) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := principal.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c ClearCartCommand) Principal() auth.Principal {
	return c.principal
}
