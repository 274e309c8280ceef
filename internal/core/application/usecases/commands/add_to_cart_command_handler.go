package commands

import (
	"context"
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/cart"
	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/pkg/errs"
)

// AddToCartCommandHandler handles adding fruits to a member's cart.
//
// The cart is advisory: stock is checked against the requested quantity to
// catch obvious mistakes early, but the binding reservation happens at
// checkout, under lock.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the fruit to the caller's cart, merging with an existing item
// for the same fruit.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	f, err := uow.FruitRepository().Get(ctx, cmd.FruitID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	memberID := cmd.Principal().MemberID()

	existing, err := cartRepo.GetByMemberAndFruit(ctx, memberID, cmd.FruitID())
	switch {
	case err == nil:
		if err = checkCartStock(f, existing.Quantity()+cmd.Quantity()); err != nil {
			return err
		}
		if err = existing.AddQuantity(cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if err = checkCartStock(f, cmd.Quantity()); err != nil {
			return err
		}
		item, err := cart.NewCartItem(cmd.ItemID(), memberID, cmd.FruitID(), cmd.Quantity())
		if err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, item); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}

func checkCartStock(f *fruit.Fruit, wanted int) error {
	if f.StockQuantity() < wanted {
		return fmt.Errorf("%w: requested %d, available %d",
			fruit.ErrOutOfStock, wanted, f.StockQuantity())
	}
	return nil
}
