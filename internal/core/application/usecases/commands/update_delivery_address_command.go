package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateDeliveryAddressCommandIsNotConstructed = errors.New(
	"UpdateDeliveryAddressCommand must be created via NewUpdateDeliveryAddressCommand constructor",
)

// UpdateDeliveryAddressCommand represents a request to change the destination
// of a shipment that is still being prepared.
type UpdateDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	address    delivery.Address
	principal  auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryAddressCommand creates a command to change a delivery's destination.
func NewUpdateDeliveryAddressCommand(deliveryID kernel.UUID, address delivery.Address,
	principal auth.Principal) (UpdateDeliveryAddressCommand, error) {
	cmd := UpdateDeliveryAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryID.Validate(),
		address.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateDeliveryAddressCommand{}, err
	}

	cmd.deliveryID = deliveryID
	cmd.address = address
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryAddressCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryAddressCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Address returns the new destination.
func (c UpdateDeliveryAddressCommand) Address() delivery.Address {
	return c.address
}

// Principal returns the authenticated caller.
func (c UpdateDeliveryAddressCommand) Principal() auth.Principal {
	return c.principal
}
