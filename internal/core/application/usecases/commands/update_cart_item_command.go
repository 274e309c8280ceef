package commands

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a member changing the quantity of an item
// in their own cart.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	quantity  int
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart item's quantity.
func NewUpdateCartItemCommand(itemID kernel.UUID, quantity int,
	principal auth.Principal) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}
	if quantity <= 0 {
		return UpdateCartItemCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	cmd.itemID = itemID
	cmd.quantity = quantity
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the cart item to change.
func (c UpdateCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

// Principal returns the authenticated caller.
func (c UpdateCartItemCommand) Principal() auth.Principal {
	return c.principal
}
