package commands

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a member putting a quantity of a fruit into
// their cart. Adding a fruit already in the cart merges the quantities.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	fruitID   kernel.UUID
	quantity  int
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a fruit to the caller's cart.
func NewAddToCartCommand(itemID, fruitID kernel.UUID, quantity int,
	principal auth.Principal) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		fruitID.Validate(),
		principal.Validate(),
	); err != nil {
		return AddToCartCommand{}, err
	}
	if quantity <= 0 {
		return AddToCartCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	cmd.itemID = itemID
	cmd.fruitID = fruitID
	cmd.quantity = quantity
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// ItemID returns the identifier used if a new cart item is created.
func (c AddToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

// FruitID returns the identifier of the fruit to add.
func (c AddToCartCommand) FruitID() kernel.UUID {
	return c.fruitID
}

// Quantity returns the number of units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

// Principal returns the authenticated caller.
func (c AddToCartCommand) Principal() auth.Principal {
	return c.principal
}
