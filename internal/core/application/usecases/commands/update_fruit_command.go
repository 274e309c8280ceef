package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateFruitCommandIsNotConstructed = errors.New(
	"UpdateFruitCommand must be created via NewUpdateFruitCommand constructor",
)

// UpdateFruitCommand represents an administrative request to change a
// product's descriptive fields and price. Stock is changed through
// UpdateFruitStockCommand only.
type UpdateFruitCommand struct { //nolint:recvcheck //using for validation
	fruitID     kernel.UUID
	name        string
	origin      string
	price       kernel.Money
	categoryID  kernel.UUID
	season      string
	description string
	imageURL    string
	principal   auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateFruitCommand creates a command to update a catalog product.
func NewUpdateFruitCommand(fruitID kernel.UUID, name, origin string, price kernel.Money,
	categoryID kernel.UUID, season, description, imageURL string,
	principal auth.Principal) (UpdateFruitCommand, error) {
	cmd := UpdateFruitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fruitID.Validate(),
		categoryID.Validate(),
		requireCommandField("name", name),
		principal.Validate(),
	); err != nil {
		return UpdateFruitCommand{}, err
	}

	cmd.fruitID = fruitID
	cmd.name = name
	cmd.origin = origin
	cmd.price = price
	cmd.categoryID = categoryID
	cmd.season = season
	cmd.description = description
	cmd.imageURL = imageURL
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFruitCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFruitCommandIsNotConstructed)
}

// FruitID returns the identifier of the product to update.
func (c UpdateFruitCommand) FruitID() kernel.UUID {
	return c.fruitID
}

// Name returns the new product name.
func (c UpdateFruitCommand) Name() string {
	return c.name
}

// Origin returns the new sourcing region.
func (c UpdateFruitCommand) Origin() string {
	return c.origin
}

// Price returns the new unit price.
func (c UpdateFruitCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the new category identifier.
func (c UpdateFruitCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Season returns the new harvest season label.
func (c UpdateFruitCommand) Season() string {
	return c.season
}

// Description returns the new product description.
func (c UpdateFruitCommand) Description() string {
	return c.description
}

// ImageURL returns the new product image location.
func (c UpdateFruitCommand) ImageURL() string {
	return c.imageURL
}

// Principal returns the authenticated caller.
func (c UpdateFruitCommand) Principal() auth.Principal {
	return c.principal
}
