package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a customer confirming payment for their own
// pending order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to mark an order as paid.
func NewPayOrderCommand(orderID kernel.UUID, principal auth.Principal) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		principal.Validate(),
	); err != nil {
		return PayOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the authenticated caller.
func (c PayOrderCommand) Principal() auth.Principal {
	return c.principal
}
