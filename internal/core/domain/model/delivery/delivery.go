// Package delivery provides the Delivery aggregate: the shipment attached
// one-to-one to an order, with its own lifecycle that propagates back into
// the order's status.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate root for a shipment. Exactly one delivery exists
// per order; the uniqueness is enforced by the use case that creates it.
type Delivery struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	address              Address
	status               Status
	courierCompany       string
	trackingNumber       string
	expectedDeliveryDate time.Time
	actualDeliveryDate   *time.Time

	isConstructed bool
}

// NewDelivery creates a delivery. The courier and tracking number may be
// empty until the carrier picks the shipment up.
func NewDelivery(id, orderID kernel.UUID, status Status, address Address,
	courierCompany, trackingNumber string, expectedDeliveryDate time.Time) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		address.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                   id,
		orderID:              orderID,
		address:              address,
		status:               status,
		courierCompany:       courierCompany,
		trackingNumber:       trackingNumber,
		expectedDeliveryDate: expectedDeliveryDate,
		isConstructed:        true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(id, orderID kernel.UUID, status Status, address Address,
	courierCompany, trackingNumber string,
	expectedDeliveryDate time.Time, actualDeliveryDate *time.Time) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, status, address, courierCompany, trackingNumber,
		expectedDeliveryDate)
	if err != nil {
		return nil, err
	}
	d.actualDeliveryDate = actualDeliveryDate
	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Address returns the destination of the shipment.
func (d *Delivery) Address() Address {
	return d.address
}

// Status returns the delivery's lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// TrackingNumber returns the courier tracking number, empty until assigned.
func (d *Delivery) TrackingNumber() string {
	return d.trackingNumber
}

// CourierCompany returns the name of the carrier, empty until assigned.
func (d *Delivery) CourierCompany() string {
	return d.courierCompany
}

// ExpectedDeliveryDate returns the promised delivery date.
func (d *Delivery) ExpectedDeliveryDate() time.Time {
	return d.expectedDeliveryDate
}

// ActualDeliveryDate returns the moment the shipment was delivered, or nil
// while in transit.
func (d *Delivery) ActualDeliveryDate() *time.Time {
	return d.actualDeliveryDate
}

// UpdateStatus moves the delivery to a new state. A DELIVERED delivery only
// accepts DELIVERED again, which is a no-op. Transitioning into DELIVERED
// stamps the actual delivery date; the no-op never re-stamps it.
func (d *Delivery) UpdateStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if d.status == Delivered && status != Delivered {
		return errs.NewInvalidStateError("delivery is already completed")
	}

	if status == Delivered && d.status != Delivered {
		stamped := now
		d.actualDeliveryDate = &stamped
	}
	d.status = status
	return nil
}

// UpdateInfo applies a status change together with new shipping details in
// one step. The status follows the same rule as UpdateStatus; the expected
// date, courier, and tracking number are overwritten as given.
func (d *Delivery) UpdateInfo(status Status, expectedDeliveryDate time.Time,
	courierCompany, trackingNumber string, now time.Time) error {
	if err := d.UpdateStatus(status, now); err != nil {
		return err
	}

	d.expectedDeliveryDate = expectedDeliveryDate
	d.courierCompany = courierCompany
	d.trackingNumber = trackingNumber
	return nil
}

// Cancel cancels the delivery. A shipment that is already on the road or
// delivered cannot be cancelled.
func (d *Delivery) Cancel() error {
	if d.status == Shipping || d.status == Delivered {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot cancel a delivery in status %s", d.status))
	}
	d.status = Cancelled
	return nil
}

// UpdateTrackingInfo sets the courier company and tracking number. It has no
// effect on the delivery's state.
func (d *Delivery) UpdateTrackingInfo(courierCompany, trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	d.courierCompany = courierCompany
	d.trackingNumber = trackingNumber
	return nil
}

// UpdateAddress overwrites the destination. Allowed only while the shipment
// is still being prepared.
func (d *Delivery) UpdateAddress(address Address) error {
	if d.status != Preparing {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot change the address of a delivery in status %s", d.status))
	}
	if err := address.Validate(); err != nil {
		return err
	}

	d.address = address
	return nil
}
