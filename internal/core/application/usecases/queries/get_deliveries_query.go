package queries

import (
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery is the delivery listing. It supports optional filtering
// by status, by expected delivery date range, and by tracking number;
// zero-value filters are ignored. Like the single-delivery reads it needs no
// principal, so recipients without an account can look a shipment up by its
// tracking number.
type GetDeliveriesQuery struct {
	status         delivery.Status
	expectedFrom   time.Time
	expectedTo     time.Time
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a delivery listing query. Pass
// delivery.UnknownStatus to skip the status filter, zero times to skip the
// expected date bounds, and an empty string to skip the tracking filter.
func NewGetDeliveriesQuery(status delivery.Status, expectedFrom, expectedTo time.Time,
	trackingNumber string) (GetDeliveriesQuery, error) {
	if status != delivery.UnknownStatus {
		if err := status.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}
	if !expectedFrom.IsZero() && !expectedTo.IsZero() && expectedTo.Before(expectedFrom) {
		return GetDeliveriesQuery{}, errs.NewValueIsInvalidErrorWithCause("expectedTo",
			errors.New("date range end precedes its start"))
	}

	return GetDeliveriesQuery{
		status:         status,
		expectedFrom:   expectedFrom,
		expectedTo:     expectedTo,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Status returns the status filter, or delivery.UnknownStatus for no filter.
func (q GetDeliveriesQuery) Status() delivery.Status {
	return q.status
}

// ExpectedFrom returns the inclusive lower bound on the expected delivery date.
func (q GetDeliveriesQuery) ExpectedFrom() time.Time {
	return q.expectedFrom
}

// ExpectedTo returns the inclusive upper bound on the expected delivery date.
func (q GetDeliveriesQuery) ExpectedTo() time.Time {
	return q.expectedTo
}

// TrackingNumber returns the tracking number filter, or empty for no filter.
func (q GetDeliveriesQuery) TrackingNumber() string {
	return q.trackingNumber
}
