package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrRemoveFromWishlistCommandIsNotConstructed = errors.New(
	"RemoveFromWishlistCommand must be created via NewRemoveFromWishlistCommand constructor",
)

// RemoveFromWishlistCommand represents a member removing a bookmark from
// their own wishlist.
type RemoveFromWishlistCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewRemoveFromWishlistCommand creates a command to remove a wishlist entry.
func NewRemoveFromWishlistCommand(itemID kernel.UUID,
	principal auth.Principal) (RemoveFromWishlistCommand, error) {
	cmd := RemoveFromWishlistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		principal.Validate(),
	); err != nil {
		return RemoveFromWishlistCommand{}, err
	}

	cmd.itemID = itemID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromWishlistCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromWishlistCommandIsNotConstructed)
}

// ItemID returns the identifier of the wishlist entry to remove.
func (c RemoveFromWishlistCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Principal returns the authenticated caller.
func (c RemoveFromWishlistCommand) Principal() auth.Principal {
	return c.principal
}
