package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

// UpdateReviewCommand represents a member editing their own review.
type UpdateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID  kernel.UUID
	rating    int
	comment   string
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateReviewCommand creates a command to edit a review.
func NewUpdateReviewCommand(reviewID kernel.UUID, rating int, comment string,
	principal auth.Principal) (UpdateReviewCommand, error) {
	cmd := UpdateReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewID.Validate(),
		principal.Validate(),
	); err != nil {
		return UpdateReviewCommand{}, err
	}
	if rating < 1 || rating > 5 {
		return UpdateReviewCommand{}, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	cmd.reviewID = reviewID
	cmd.rating = rating
	cmd.comment = comment
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to edit.
func (c UpdateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Rating returns the new star rating.
func (c UpdateReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the new review body.
func (c UpdateReviewCommand) Comment() string {
	return c.comment
}

// Principal returns the authenticated caller.
func (c UpdateReviewCommand) Principal() auth.Principal {
	return c.principal
}
