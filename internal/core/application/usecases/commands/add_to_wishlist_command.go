package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrAddToWishlistCommandIsNotConstructed = errors.New(
	"AddToWishlistCommand must be created via NewAddToWishlistCommand constructor",
)

// AddToWishlistCommand represents a member bookmarking a fruit.
type AddToWishlistCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	fruitID   kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewAddToWishlistCommand creates a command to add a fruit to the caller's wishlist.
func NewAddToWishlistCommand(itemID, fruitID kernel.UUID,
	principal auth.Principal) (AddToWishlistCommand, error) {
	cmd := AddToWishlistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		fruitID.Validate(),
		principal.Validate(),
	); err != nil {
		return AddToWishlistCommand{}, err
	}

	cmd.itemID = itemID
	cmd.fruitID = fruitID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToWishlistCommand) Validate() error {
	return c.guard.Validate(ErrAddToWishlistCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new wishlist entry.
func (c AddToWishlistCommand) ItemID() kernel.UUID {
	return c.itemID
}

// FruitID returns the identifier of the fruit to bookmark.
func (c AddToWishlistCommand) FruitID() kernel.UUID {
	return c.fruitID
}

// Principal returns the authenticated caller.
func (c AddToWishlistCommand) Principal() auth.Principal {
	return c.principal
}
