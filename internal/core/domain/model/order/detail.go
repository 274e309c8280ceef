package order

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

// Detail is a single order line. The unit price is a snapshot of the catalog
// price at order time, so later price changes never affect placed orders.
type Detail struct {
	id        kernel.UUID
	fruitID   kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard.ConstructorGuard
}

// NewDetail creates an order line with a positive quantity.
func NewDetail(id, fruitID kernel.UUID, quantity int, unitPrice kernel.Money) (Detail, error) {
	if err := errors.Join(
		id.Validate(),
		fruitID.Validate(),
	); err != nil {
		return Detail{}, err
	}
	if quantity <= 0 {
		return Detail{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Detail{
		id:               id,
		fruitID:          fruitID,
		quantity:         quantity,
		unitPrice:        unitPrice,
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the detail was created through the constructor.
func (d Detail) Validate() error {
	return d.ConstructorGuard.Validate(errors.New("Detail must be created via NewDetail constructor"))
}

// ID returns the order line's unique identifier.
func (d Detail) ID() kernel.UUID {
	return d.id
}

// FruitID returns the identifier of the ordered product.
func (d Detail) FruitID() kernel.UUID {
	return d.fruitID
}

// Quantity returns the number of units ordered.
func (d Detail) Quantity() int {
	return d.quantity
}

// UnitPrice returns the price per unit captured at order time.
func (d Detail) UnitPrice() kernel.Money {
	return d.unitPrice
}

// Total returns the line total, unit price times quantity.
func (d Detail) Total() kernel.Money {
	return d.unitPrice.MulInt(d.quantity)
}
