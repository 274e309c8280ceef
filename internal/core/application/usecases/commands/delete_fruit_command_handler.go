package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// DeleteFruitCommandHandler handles removing products from the catalog.
// Existing orders keep their price and quantity snapshots, so deleting a
// product does not disturb order history.
type DeleteFruitCommandHandler struct {
	uowFactory FruitUoWFactory
}

// NewDeleteFruitCommandHandler creates a handler for product deletion.
func NewDeleteFruitCommandHandler(uowFactory FruitUoWFactory) DeleteFruitCommandHandler {
	return DeleteFruitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the product. Admin only.
func (h *DeleteFruitCommandHandler) Handle(ctx context.Context, cmd DeleteFruitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("delete fruit")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	fruitRepo := uow.FruitRepository()
	f, err := fruitRepo.Get(ctx, cmd.FruitID())
	if err != nil {
		return err
	}

	if err = fruitRepo.Delete(ctx, f.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
