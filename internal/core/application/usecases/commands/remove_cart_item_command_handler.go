package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// RemoveCartItemCommandHandler handles removing single items from a cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart item removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the caller's own cart item.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	item, err := cartRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsOwner(item.MemberID()) {
		return errs.NewAccessDeniedError("remove cart item")
	}

	if err = cartRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
