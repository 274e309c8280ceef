package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a member reviewing one line of their own
// delivered order.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID      kernel.UUID
	orderID       kernel.UUID
	orderDetailID kernel.UUID
	rating        int
	comment       string
	principal     auth.Principal

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review a purchased fruit.
// The rating must be between 1 and 5.
func NewCreateReviewCommand(reviewID, orderID, orderDetailID kernel.UUID, rating int,
	comment string, principal auth.Principal) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewID.Validate(),
		orderID.Validate(),
		orderDetailID.Validate(),
		principal.Validate(),
	); err != nil {
		return CreateReviewCommand{}, err
	}
	if rating < 1 || rating > 5 {
		return CreateReviewCommand{}, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	cmd.reviewID = reviewID
	cmd.orderID = orderID
	cmd.orderDetailID = orderDetailID
	cmd.rating = rating
	cmd.comment = comment
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the unique identifier for the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the identifier of the order being reviewed.
func (c CreateReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderDetailID returns the identifier of the order line being reviewed.
func (c CreateReviewCommand) OrderDetailID() kernel.UUID {
	return c.orderDetailID
}

// Rating returns the star rating, 1 to 5.
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the review body.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

// Principal returns the authenticated caller.
func (c CreateReviewCommand) Principal() auth.Principal {
	return c.principal
}
