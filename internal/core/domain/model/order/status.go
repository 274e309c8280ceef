package order

import (
	"fmt"

	"fruitmall/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// The customer-facing flow is PENDING -> PAID -> PREPARING -> SHIPPED ->
// DELIVERED. CANCELLED is reachable from every state except SHIPPED and
// DELIVERED when the customer cancels; administrators may force any status.
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	Pending
	Paid
	Preparing
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Pending:       "PENDING",
		Paid:          "PAID",
		Preparing:     "PREPARING",
		Shipped:       "SHIPPED",
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
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks the Status is one of the defined states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
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

// IsCancellable reports whether a customer may still cancel an order in this
// state. Orders that have shipped are past the point of no return.
func (s Status) IsCancellable() bool {
	return s != Shipped && s != Delivered && s != Cancelled
}
