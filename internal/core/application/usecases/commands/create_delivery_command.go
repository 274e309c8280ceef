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

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents an administrative request to create the
// shipment for a paid order.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID           kernel.UUID
	orderID              kernel.UUID
	status               delivery.Status
	expectedDeliveryDate time.Time
	courierCompany       string
	trackingNumber       string
	address              delivery.Address
	principal            auth.Principal

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to start fulfillment of an
// order. The expected delivery date must lie in the future; the courier and
// tracking number may be empty until the carrier is assigned.
func NewCreateDeliveryCommand(deliveryID, orderID kernel.UUID, status delivery.Status,
	expectedDeliveryDate time.Time, courierCompany, trackingNumber string,
	address delivery.Address, principal auth.Principal) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryID.Validate(),
		orderID.Validate(),
		status.Validate(),
		address.Validate(),
		principal.Validate(),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}
	if !expectedDeliveryDate.After(time.Now()) {
		return CreateDeliveryCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"expectedDeliveryDate", errors.New("must be a future date"))
	}

	cmd.deliveryID = deliveryID
	cmd.orderID = orderID
	cmd.status = status
	cmd.expectedDeliveryDate = expectedDeliveryDate
	cmd.courierCompany = courierCompany
	cmd.trackingNumber = trackingNumber
	cmd.address = address
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order to fulfill.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the initial delivery status.
func (c CreateDeliveryCommand) Status() delivery.Status {
	return c.status
}

// ExpectedDeliveryDate returns the promised delivery date.
func (c CreateDeliveryCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

// CourierCompany returns the carrier name, possibly empty.
func (c CreateDeliveryCommand) CourierCompany() string {
	return c.courierCompany
}

// TrackingNumber returns the carrier tracking number, possibly empty.
func (c CreateDeliveryCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Address returns the shipment destination.
func (c CreateDeliveryCommand) Address() delivery.Address {
	return c.address
}

// Principal returns the authenticated caller.
func (c CreateDeliveryCommand) Principal() auth.Principal {
	return c.principal
}
