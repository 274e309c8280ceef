package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// UpdateReviewCommandHandler handles review edits by their author.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewUpdateReviewCommandHandler creates a handler for review edits.
func NewUpdateReviewCommandHandler(uowFactory ReviewUoWFactory) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle edits the caller's own review.
func (h *UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) error {
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

	if !cmd.Principal().IsOwner(r.MemberID()) {
		return errs.NewAccessDeniedError("update review")
	}

	if err = r.Update(cmd.Rating(), cmd.Comment()); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
