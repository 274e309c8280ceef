package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents an administrative request to move a
// shipment through its lifecycle.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	principal  auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a delivery's status.
func NewUpdateDeliveryStatusCommand(deliveryID kernel.UUID, status delivery.Status,
	principal auth.Principal) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryID.Validate(),
		status.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	cmd.deliveryID = deliveryID
	cmd.status = status
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the requested target status.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// Principal returns the authenticated caller.
func (c UpdateDeliveryStatusCommand) Principal() auth.Principal {
	return c.principal
}
