package commands

import (
	"context"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/core/ports"
)

// restoreOrderStock returns the reserved stock of every order line to the
// catalog. Fruits are loaded under a row-level write lock so the increase
// serializes with concurrent checkouts. Must run inside the transaction that
// cancels the order.
func restoreOrderStock(ctx context.Context, fruitRepo ports.FruitRepository, o *order.Order) error {
	for _, detail := range o.Details() {
		f, err := fruitRepo.GetForUpdate(ctx, detail.FruitID())
		if err != nil {
			return err
		}

		if err = f.IncreaseStock(detail.Quantity()); err != nil {
			return err
		}

		if err = fruitRepo.Update(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
