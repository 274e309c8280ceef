package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// RemoveFromWishlistCommandHandler handles wishlist entry removal.
type RemoveFromWishlistCommandHandler struct {
	uowFactory WishlistUoWFactory
}

// NewRemoveFromWishlistCommandHandler creates a handler for wishlist removal.
func NewRemoveFromWishlistCommandHandler(
	uowFactory WishlistUoWFactory) RemoveFromWishlistCommandHandler {
	return RemoveFromWishlistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the caller's own wishlist entry.
func (h *RemoveFromWishlistCommandHandler) Handle(ctx context.Context,
	cmd RemoveFromWishlistCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wishlistRepo := uow.WishlistRepository()
	item, err := wishlistRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsOwner(item.MemberID()) {
		return errs.NewAccessDeniedError("remove wishlist item")
	}

	if err = wishlistRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
