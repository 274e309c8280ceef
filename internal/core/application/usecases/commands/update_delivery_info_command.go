package commands

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateDeliveryInfoCommandIsNotConstructed = errors.New(
	"UpdateDeliveryInfoCommand must be created via NewUpdateDeliveryInfoCommand constructor",
)

// UpdateDeliveryInfoCommand represents an administrative request to update a
// shipment's status, schedule, and courier details in one step.
type UpdateDeliveryInfoCommand struct { //nolint:recvcheck //using for validation
	deliveryID           kernel.UUID
	status               delivery.Status
	expectedDeliveryDate time.Time
	courierCompany       string
	trackingNumber       string
	principal            auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryInfoCommand creates a command to update delivery details.
// The courier and tracking number may be empty; the expected date may not.
func NewUpdateDeliveryInfoCommand(deliveryID kernel.UUID, status delivery.Status,
	expectedDeliveryDate time.Time, courierCompany, trackingNumber string,
	principal auth.Principal) (UpdateDeliveryInfoCommand, error) {
	cmd := UpdateDeliveryInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryID.Validate(),
		status.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateDeliveryInfoCommand{}, err
	}
	if expectedDeliveryDate.IsZero() {
		return UpdateDeliveryInfoCommand{}, errs.NewValueIsRequiredError("expectedDeliveryDate")
	}

	cmd.deliveryID = deliveryID
	cmd.status = status
	cmd.expectedDeliveryDate = expectedDeliveryDate
	cmd.courierCompany = courierCompany
	cmd.trackingNumber = trackingNumber
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryInfoCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryInfoCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the requested target status.
func (c UpdateDeliveryInfoCommand) Status() delivery.Status {
	return c.status
}

// ExpectedDeliveryDate returns the new promised delivery date.
func (c UpdateDeliveryInfoCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

// CourierCompany returns the new carrier name, possibly empty.
func (c UpdateDeliveryInfoCommand) CourierCompany() string {
	return c.courierCompany
}

// TrackingNumber returns the new tracking number, possibly empty.
func (c UpdateDeliveryInfoCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Principal returns the authenticated caller.
func (c UpdateDeliveryInfoCommand) Principal() auth.Principal {
	return c.principal
}
