package commands

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateFruitStockCommandIsNotConstructed = errors.New(
	"UpdateFruitStockCommand must be created via NewUpdateFruitStockCommand constructor",
)

// UpdateFruitStockCommand represents an administrative stock correction.
type UpdateFruitStockCommand struct { //nolint:recvcheck //using for validation
	fruitID       kernel.UUID
	stockQuantity int
	principal     auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateFruitStockCommand creates a command to overwrite a product's stock.
func NewUpdateFruitStockCommand(fruitID kernel.UUID, stockQuantity int,
	principal auth.Principal) (UpdateFruitStockCommand, error) {
	cmd := UpdateFruitStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fruitID.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateFruitStockCommand{}, err
	}
	if stockQuantity < 0 {
		return UpdateFruitStockCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity", fmt.Errorf("%d is negative", stockQuantity))
	}

	cmd.fruitID = fruitID
	cmd.stockQuantity = stockQuantity
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFruitStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFruitStockCommandIsNotConstructed)
}

// FruitID returns the identifier of the product to correct.
func (c UpdateFruitStockCommand) FruitID() kernel.UUID {
	return c.fruitID
}

// StockQuantity returns the new stock level.
func (c UpdateFruitStockCommand) StockQuantity() int {
	return c.stockQuantity
}

// Principal returns the authenticated caller.
func (c UpdateFruitStockCommand) Principal() auth.Principal {
	return c.principal
}
