package commands

import (
	"context"

	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/pkg/errs"
)

// RegisterFruitCommandHandler handles adding products to the catalog.
type RegisterFruitCommandHandler struct {
	uowFactory FruitUoWFactory
}

// NewRegisterFruitCommandHandler creates a handler for product registration.
func NewRegisterFruitCommandHandler(uowFactory FruitUoWFactory) RegisterFruitCommandHandler {
	return RegisterFruitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the product. Admin only. The referenced category must exist.
func (h *RegisterFruitCommandHandler) Handle(ctx context.Context, cmd RegisterFruitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("register fruit")
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

	f, err := fruit.NewFruit(cmd.FruitID(), cmd.Name(), cmd.Origin(), cmd.StockQuantity(),
		cmd.Price(), cmd.CategoryID(), cmd.Season(), cmd.Description(), cmd.ImageURL())
	if err != nil {
		return err
	}

	if err = uow.FruitRepository().Add(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
