package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// UpdateCartItemCommandHandler handles cart quantity changes.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity changes.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the quantity of the caller's own cart item.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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
		return errs.NewAccessDeniedError("update cart item")
	}

	f, err := uow.FruitRepository().Get(ctx, item.FruitID())
	if err != nil {
		return err
	}
	if err = checkCartStock(f, cmd.Quantity()); err != nil {
		return err
	}

	if err = item.UpdateQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
