package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

// DeleteReviewCommand represents a request to delete a review, either by its
// author or by an administrator moderating content.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID  kernel.UUID
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to delete a review.
func NewDeleteReviewCommand(reviewID kernel.UUID,
	principal auth.Principal) (DeleteReviewCommand, error) {
	cmd := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewID.Validate(),
		principal.Validate(),
	); err != nil {
		return DeleteReviewCommand{}, err
	}

	cmd.reviewID = reviewID
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to delete.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Principal returns the authenticated caller.
func (c DeleteReviewCommand) Principal() auth.Principal {
	return c.principal
}
