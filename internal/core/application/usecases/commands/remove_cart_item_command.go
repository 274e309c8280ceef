package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a member removing an item from their own
// cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart item.
func NewRemoveCartItemCommand(itemID kernel.UUID,
	principal auth.Principal) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		principal.Validate(),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	cmd.itemID = itemID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the cart item to remove.
func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Principal returns the authenticated caller.
func (c RemoveCartItemCommand) Principal() auth.Principal {
	return c.principal
}
