package commands

import (
	"errors"
	"fmt"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItem is one requested line of a new order: which fruit and how many
// units. The unit price is not part of the request; it is snapshotted from
// the catalog inside the transaction.
type OrderItem struct {
	fruitID  kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order item with a positive quantity.
func NewOrderItem(fruitID kernel.UUID, quantity int) (OrderItem, error) {
	if err := fruitID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderItem{
		fruitID:  fruitID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(errors.New("OrderItem must be created via NewOrderItem constructor"))
}

// FruitID returns the identifier of the requested fruit.
func (i OrderItem) FruitID() kernel.UUID {
	return i.fruitID
}

// Quantity returns the requested number of units.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a customer's request to place an order for
// one or more fruits. The order is placed on behalf of the authenticated
// principal.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod string
	principal     auth.Principal
	items         []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the payment method is present, the
// principal is constructed, and at least one valid item is present.
func NewCreateOrderCommand(orderID kernel.UUID, paymentMethod string,
	principal auth.Principal, items []OrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		requireCommandField("paymentMethod", paymentMethod),
		cmd.setPrincipal(principal),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns the payment method label the customer picked.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Principal returns the authenticated customer placing the order.
func (c CreateOrderCommand) Principal() auth.Principal {
	return c.principal
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}
