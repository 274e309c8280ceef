// Package cart provides the CartItem aggregate: one row per member and fruit,
// merged on repeat adds.
package cart

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
)

// ErrCartItemIsNotConstructed is returned when a CartItem instance was not
// created through NewCartItem or RestoreCartItem.
var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem constructor")

// CartItem holds a member's intent to buy a quantity of one fruit. A member
// has at most one item per fruit; adding the same fruit again merges into the
// existing item.
type CartItem struct {
	id       kernel.UUID
	memberID kernel.UUID
	fruitID  kernel.UUID
	quantity int

	isConstructed bool
}

// NewCartItem creates a cart item with a positive quantity.
func NewCartItem(id, memberID, fruitID kernel.UUID, quantity int) (*CartItem, error) {
	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
		fruitID.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &CartItem{
		id:            id,
		memberID:      memberID,
		fruitID:       fruitID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreCartItem reconstructs a cart item from persistence.
func RestoreCartItem(id, memberID, fruitID kernel.UUID, quantity int) (*CartItem, error) {
	return NewCartItem(id, memberID, fruitID, quantity)
}

// Validate ensures the cart item was created through a constructor.
func (c *CartItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartItemIsNotConstructed
	}
	return nil
}

// ID returns the cart item's unique identifier.
func (c *CartItem) ID() kernel.UUID {
	return c.id
}

// MemberID returns the owning member's identifier.
func (c *CartItem) MemberID() kernel.UUID {
	return c.memberID
}

// FruitID returns the identifier of the fruit in the cart.
func (c *CartItem) FruitID() kernel.UUID {
	return c.fruitID
}

// Quantity returns the number of units in the cart.
func (c *CartItem) Quantity() int {
	return c.quantity
}

// AddQuantity merges another add of the same fruit into this item.
func (c *CartItem) AddQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity += quantity
	return nil
}

// UpdateQuantity overwrites the quantity.
func (c *CartItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
