// Package order provides the Order aggregate root, its line items, and the
// order lifecycle state machine.
package order

import (
	"errors"
	"fmt"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer purchase. It owns its line items
// and its total is always derived from them, never set directly.
type Order struct {
	id            kernel.UUID
	memberID      kernel.UUID
	orderDate     time.Time
	paymentMethod string
	status        Status
	totalPrice    kernel.Money
	details       []Detail

	isConstructed bool
}

// NewOrder creates an order in the PENDING state with at least one line item.
// The payment method is an opaque label chosen by the customer; the total
// price is computed from the lines.
func NewOrder(id, memberID kernel.UUID, orderDate time.Time, paymentMethod string,
	details []Detail) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
	); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		return nil, errs.NewValueIsRequiredError("paymentMethod")
	}
	if len(details) == 0 {
		return nil, errs.NewValueIsRequiredError("details")
	}
	for _, detail := range details {
		if err := detail.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:            id,
		memberID:      memberID,
		orderDate:     orderDate,
		paymentMethod: paymentMethod,
		status:        Pending,
		details:       append([]Detail(nil), details...),
		isConstructed: true,
	}
	o.recalculateTotalPrice()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The total is recomputed
// from the lines rather than trusted from storage.
func RestoreOrder(id, memberID kernel.UUID, orderDate time.Time, paymentMethod string,
	status Status, details []Detail) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, memberID, orderDate, paymentMethod, details)
	if err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

func (o *Order) recalculateTotalPrice() {
	total := kernel.ZeroMoney()
	for _, detail := range o.details {
		total = total.Add(detail.Total())
	}
	o.totalPrice = total
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MemberID returns the identifier of the member who placed the order.
func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

// OrderDate returns the time the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// PaymentMethod returns the payment method label the customer picked at
// checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Status returns the order's lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the sum of all line totals.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Details returns a copy of the order's line items.
func (o *Order) Details() []Detail {
	return append([]Detail(nil), o.details...)
}

// DetailByID returns the order line with the given identifier.
func (o *Order) DetailByID(detailID kernel.UUID) (Detail, error) {
	for _, detail := range o.details {
		if detail.ID().IsEqual(detailID) {
			return detail, nil
		}
	}
	return Detail{}, errs.NewObjectNotFoundError("detailID", detailID)
}

// Pay marks a pending order as paid.
func (o *Order) Pay() error {
	if o.status != Pending {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot pay an order in status %s", o.status))
	}
	o.status = Paid
	return nil
}

// StartPreparing moves a paid order into fulfillment. This is the transition
// taken when a delivery is created for the order.
func (o *Order) StartPreparing() error {
	if o.status != Paid {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot start preparing an order in status %s", o.status))
	}
	o.status = Preparing
	return nil
}

// Cancel cancels the order on behalf of the customer. Orders that have
// shipped or been delivered can no longer be cancelled.
func (o *Order) Cancel() error {
	if !o.status.IsCancellable() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("cannot cancel an order in status %s", o.status))
	}
	o.status = Cancelled
	return nil
}

// ForceStatus overwrites the order status without lifecycle checks. It exists
// for the administrative status override and for status propagation from the
// order's delivery; customer-initiated changes must go through Cancel.
func (o *Order) ForceStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
