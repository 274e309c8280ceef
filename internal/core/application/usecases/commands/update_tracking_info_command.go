package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateTrackingInfoCommandIsNotConstructed = errors.New(
	"UpdateTrackingInfoCommand must be created via NewUpdateTrackingInfoCommand constructor",
)

// UpdateTrackingInfoCommand represents an administrative request to attach
// courier tracking details to a delivery.
type UpdateTrackingInfoCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	courierCompany string
	trackingNumber string
	principal      auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateTrackingInfoCommand creates a command to set tracking details.
func NewUpdateTrackingInfoCommand(deliveryID kernel.UUID, courierCompany, trackingNumber string,
	principal auth.Principal) (UpdateTrackingInfoCommand, error) {
	cmd := UpdateTrackingInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryID.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateTrackingInfoCommand{}, err
	}
	if trackingNumber == "" {
		return UpdateTrackingInfoCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	cmd.deliveryID = deliveryID
	cmd.courierCompany = courierCompany
	cmd.trackingNumber = trackingNumber
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackingInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingInfoCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateTrackingInfoCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierCompany returns the carrier name.
func (c UpdateTrackingInfoCommand) CourierCompany() string {
	return c.courierCompany
}

// TrackingNumber returns the courier tracking number.
func (c UpdateTrackingInfoCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Principal returns the authenticated caller.
func (c UpdateTrackingInfoCommand) Principal() auth.Principal {
	return c.principal
}
