package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// DeleteReviewCommandHandler handles review deletion by the author or an
// administrator.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewDeleteReviewCommandHandler creates a handler for review deletion.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the review.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	r, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsOwnerOrAdmin(r.MemberID()) {
		return errs.NewAccessDeniedError("delete review")
	}

	if err = reviewRepo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
