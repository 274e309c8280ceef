package commands

import (
	"context"
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/wishlist"
	"fruitmall/internal/pkg/errs"
)

// AddToWishlistCommandHandler handles wishlist additions. A member can
// bookmark each fruit once.
type AddToWishlistCommandHandler struct {
	uowFactory WishlistUoWFactory
}

// NewAddToWishlistCommandHandler creates a handler for wishlist additions.
func NewAddToWishlistCommandHandler(uowFactory WishlistUoWFactory) AddToWishlistCommandHandler {
	return AddToWishlistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the fruit to the caller's wishlist. Fails when the fruit does
// not exist or is already bookmarked.
func (h *AddToWishlistCommandHandler) Handle(ctx context.Context, cmd AddToWishlistCommand) error {
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

	if _, err := uow.FruitRepository().Get(ctx, cmd.FruitID()); err != nil {
		return err
	}

	wishlistRepo := uow.WishlistRepository()
	memberID := cmd.Principal().MemberID()

	if _, err := wishlistRepo.GetByMemberAndFruit(ctx, memberID, cmd.FruitID()); err == nil {
		return errs.NewInvalidStateError("fruit is already in the wishlist")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	item, err := wishlist.NewWishlistItem(cmd.ItemID(), memberID, cmd.FruitID(), time.Now())
	if err != nil {
		return err
	}

	if err = wishlistRepo.Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
