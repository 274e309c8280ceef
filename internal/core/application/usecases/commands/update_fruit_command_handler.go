package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// UpdateFruitCommandHandler handles catalog product updates.
type UpdateFruitCommandHandler struct {
	uowFactory FruitUoWFactory
}

// NewUpdateFruitCommandHandler creates a handler for product updates.
func NewUpdateFruitCommandHandler(uowFactory FruitUoWFactory) UpdateFruitCommandHandler {
	return UpdateFruitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the product's descriptive fields. Admin only.
func (h *UpdateFruitCommandHandler) Handle(ctx context.Context, cmd UpdateFruitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("update fruit")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	fruitRepo := uow.FruitRepository()
	f, err := fruitRepo.Get(ctx, cmd.FruitID())
	if err != nil {
		return err
	}

	if err = f.UpdateInfo(cmd.Name(), cmd.Origin(), cmd.Price(), cmd.CategoryID(),
		cmd.Season(), cmd.Description(), cmd.ImageURL()); err != nil {
		return err
	}

	if err = fruitRepo.Update(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
