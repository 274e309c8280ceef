package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// UpdateFruitStockCommandHandler handles administrative stock corrections.
// The fruit is loaded under the same write lock checkout uses, so a
// correction cannot race a concurrent order.
type UpdateFruitStockCommandHandler struct {
	uowFactory FruitUoWFactory
}

// NewUpdateFruitStockCommandHandler creates a handler for stock corrections.
func NewUpdateFruitStockCommandHandler(uowFactory FruitUoWFactory) UpdateFruitStockCommandHandler {
	return UpdateFruitStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle overwrites the product's stock level. Admin only.
func (h *UpdateFruitStockCommandHandler) Handle(ctx context.Context,
	cmd UpdateFruitStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("update fruit stock")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	fruitRepo := uow.FruitRepository()
	f, err := fruitRepo.GetForUpdate(ctx, cmd.FruitID())
	if err != nil {
		return err
	}

	if err = f.UpdateStock(cmd.StockQuantity()); err != nil {
		return err
	}

	if err = fruitRepo.Update(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
