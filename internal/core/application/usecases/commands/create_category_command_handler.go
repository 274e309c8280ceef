package commands

import (
	"context"

	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/pkg/errs"
)

// CreateCategoryCommandHandler handles adding categories to the catalog.
type CreateCategoryCommandHandler struct {
	uowFactory FruitUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory FruitUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the category. Admin only.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("create category")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := fruit.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.CategoryRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
