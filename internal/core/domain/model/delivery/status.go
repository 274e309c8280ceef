package delivery

import (
	"fmt"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
// Deliveries start in PREPARING and move through SHIPPING to DELIVERED.
// DELIVERED is terminal. CANCELLED is reachable only from PREPARING.
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	Preparing
	Shipping
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Preparing:     "PREPARING",
		Shipping:      "SHIPPING",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// StatusFromString parses the persisted textual form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != UnknownStatus {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks the Status is one of the defined states.
func (s Status) Validate() error {
	if s < Preparing || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the persisted textual form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// OrderStatus returns the order status this delivery status propagates to,
// keeping the order and its delivery in step. Not every delivery status
// moves the order: PREPARING reports no propagation.
func (s Status) OrderStatus() (order.Status, bool) {
	switch s {
	case Shipping:
		return order.Shipped, true
	case Delivered:
		return order.Delivered, true
	case Cancelled:
		return order.Cancelled, true
	default:
		return order.UnknownStatus, false
	}
}
