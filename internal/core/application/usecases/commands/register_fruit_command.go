package commands

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrRegisterFruitCommandIsNotConstructed = errors.New(
	"RegisterFruitCommand must be created via NewRegisterFruitCommand constructor",
)

// RegisterFruitCommand represents an administrative request to add a product
// to the catalog.
type RegisterFruitCommand struct { //nolint:recvcheck //using for validation
	fruitID       kernel.UUID
	name          string
	origin        string
	stockQuantity int
	price         kernel.Money
	categoryID    kernel.UUID
	season        string
	description   string
	imageURL      string
	principal     auth.Principal

	guard guard.ConstructorGuard
}

// NewRegisterFruitCommand creates a command to register a catalog product.
func NewRegisterFruitCommand(fruitID kernel.UUID, name, origin string, stockQuantity int,
	price kernel.Money, categoryID kernel.UUID, season, description, imageURL string,
	principal auth.Principal) (RegisterFruitCommand, error) {
	cmd := RegisterFruitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fruitID.Validate(),
		categoryID.Validate(),
		requireCommandField("name", name),
		principal.Validate(),
	); err != nil {
		return RegisterFruitCommand{}, err
	}
	if stockQuantity < 0 {
		return RegisterFruitCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity", fmt.Errorf("%d is negative", stockQuantity))
	}

	cmd.fruitID = fruitID
	cmd.name = name
	cmd.origin = origin
	cmd.stockQuantity = stockQuantity
	cmd.price = price
	cmd.categoryID = categoryID
	cmd.season = season
	cmd.description = description
	cmd.imageURL = imageURL
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterFruitCommand) Validate() error {
	return c.guard.Validate(ErrRegisterFruitCommandIsNotConstructed)
}

// FruitID returns the unique identifier for the new product.
func (c RegisterFruitCommand) FruitID() kernel.UUID {
	return c.fruitID
}

// Name returns the product name.
func (c RegisterFruitCommand) Name() string {
	return c.name
}

// Origin returns the sourcing region.
func (c RegisterFruitCommand) Origin() string {
	return c.origin
}

// StockQuantity returns the initial stock level.
func (c RegisterFruitCommand) StockQuantity() int {
	return c.stockQuantity
}

// Price returns the unit price.
func (c RegisterFruitCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the identifier of the product's category.
func (c RegisterFruitCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Season returns the harvest season label.
func (c RegisterFruitCommand) Season() string {
	return c.season
}

// Description returns the product description.
func (c RegisterFruitCommand) Description() string {
	return c.description
}

// ImageURL returns the product image location.
func (c RegisterFruitCommand) ImageURL() string {
	return c.imageURL
}

// Principal returns the authenticated caller.
func (c RegisterFruitCommand) Principal() auth.Principal {
	return c.principal
}
