// Package fruit provides the catalog aggregates: Fruit products with mutable
// stock, and the Category taxonomy.
//
// Key business rules:
//   - stockQuantity is never negative; it is mutated only through
//     DecreaseStock, IncreaseStock, and UpdateStock
//   - DecreaseStock fails with ErrOutOfStock rather than going below zero
//   - price is a non-negative Money; order lines snapshot it at order time
package fruit

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
)

var (
	// ErrFruitIsNotConstructed is returned when a Fruit instance was not
	// created through NewFruit or RestoreFruit.
	ErrFruitIsNotConstructed = errors.New("Fruit must be created via NewFruit constructor")

	// ErrOutOfStock is returned when a stock decrease would drive the stock
	// quantity below zero.
	ErrOutOfStock = errors.New("stock is insufficient")
)

// Fruit is the aggregate root for a catalog product. Its stock quantity is
// the only contended mutable resource in the system: checkout decrements it,
// cancellation restores it, and admin adjustments overwrite it.
type Fruit struct {
	id            kernel.UUID
	name          string
	origin        string
	stockQuantity int
	price         kernel.Money
	categoryID    kernel.UUID
	season        string
	description   string
	imageURL      string

	isConstructed bool
}

// NewFruit creates a catalog product. Stock must be non-negative and the name
// is required; price non-negativity is enforced by kernel.Money.
func NewFruit(id kernel.UUID, name, origin string, stockQuantity int, price kernel.Money,
	categoryID kernel.UUID, season, description, imageURL string) (*Fruit, error) {
	if err := errors.Join(
		id.Validate(),
		categoryID.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity", fmt.Errorf("%d is negative", stockQuantity))
	}

	return &Fruit{
		id:            id,
		name:          name,
		origin:        origin,
		stockQuantity: stockQuantity,
		price:         price,
		categoryID:    categoryID,
		season:        season,
		description:   description,
		imageURL:      imageURL,
		isConstructed: true,
	}, nil
}

// RestoreFruit reconstructs a fruit from persistence.
func RestoreFruit(id kernel.UUID, name, origin string, stockQuantity int, price kernel.Money,
	categoryID kernel.UUID, season, description, imageURL string) (*Fruit, error) {
	return NewFruit(id, name, origin, stockQuantity, price, categoryID, season, description, imageURL)
}

// Validate ensures the fruit was created through a constructor.
func (f *Fruit) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFruitIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (f *Fruit) ID() kernel.UUID {
	return f.id
}

// Name returns the product name.
func (f *Fruit) Name() string {
	return f.name
}

// Origin returns the region the fruit is sourced from.
func (f *Fruit) Origin() string {
	return f.origin
}

// StockQuantity returns the current stock level.
func (f *Fruit) StockQuantity() int {
	return f.stockQuantity
}

// Price returns the current unit price.
func (f *Fruit) Price() kernel.Money {
	return f.price
}

// CategoryID returns the identifier of the product's category.
func (f *Fruit) CategoryID() kernel.UUID {
	return f.categoryID
}

// Season returns the harvest season label.
func (f *Fruit) Season() string {
	return f.season
}

// Description returns the product description.
func (f *Fruit) Description() string {
	return f.description
}

// ImageURL returns the product image location.
func (f *Fruit) ImageURL() string {
	return f.imageURL
}

// DecreaseStock reserves quantity units of stock for an order. It fails with
// ErrOutOfStock when the remaining stock is insufficient, leaving the stock
// level unchanged.
func (f *Fruit) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	rest := f.stockQuantity - quantity
	if rest < 0 {
		return fmt.Errorf("%w: requested %d, available %d", ErrOutOfStock, quantity, f.stockQuantity)
	}

	f.stockQuantity = rest
	return nil
}

// IncreaseStock returns quantity units of stock to inventory, as happens when
// an order is cancelled.
func (f *Fruit) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	f.stockQuantity += quantity
	return nil
}

// UpdateStock overwrites the stock level. Administrative correction only.
func (f *Fruit) UpdateStock(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity", fmt.Errorf("%d is negative", stockQuantity))
	}

	f.stockQuantity = stockQuantity
	return nil
}

// UpdateInfo overwrites the descriptive product fields. Stock is untouched;
// it changes only through the dedicated stock operations.
func (f *Fruit) UpdateInfo(name, origin string, price kernel.Money, categoryID kernel.UUID,
	season, description, imageURL string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := categoryID.Validate(); err != nil {
		return err
	}

	f.name = name
	f.origin = origin
	f.price = price
	f.categoryID = categoryID
	f.season = season
	f.description = description
	f.imageURL = imageURL
	return nil
}
