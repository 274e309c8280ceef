package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrDeleteFruitCommandIsNotConstructed = errors.New(
	"DeleteFruitCommand must be created via NewDeleteFruitCommand constructor",
)

// DeleteFruitCommand represents an administrative request to remove a product
// from the catalog.
type DeleteFruitCommand struct { //nolint:recvcheck //using for validation
	fruitID   kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewDeleteFruitCommand creates a command to delete a catalog product.
func NewDeleteFruitCommand(fruitID kernel.UUID,
	principal auth.Principal) (DeleteFruitCommand, error) {
	cmd := DeleteFruitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fruitID.Validate(),
		principal.Validate(),
	); err != nil {
		return DeleteFruitCommand{}, err
	}

	cmd.fruitID = fruitID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFruitCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFruitCommandIsNotConstructed)
}

// FruitID returns the identifier of the product to delete.
func (c DeleteFruitCommand) FruitID() kernel.UUID {
	return c.fruitID
}

// Principal returns the authenticated caller.
func (c DeleteFruitCommand) Principal() auth.Principal {
	return c.principal
}
