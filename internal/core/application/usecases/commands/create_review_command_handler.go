package commands

import (
	"context"
	"errors"
	"time"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/core/domain/model/review"
	"fruitmall/internal/pkg/errs"
)

// CreateReviewCommandHandler handles review creation.
//
// A review requires proof of purchase: the caller must own the order, the
// order must be DELIVERED, the reviewed line must belong to it, and each line
// can be reviewed once.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the review after all purchase checks pass.
func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsOwner(o.MemberID()) {
		return errs.NewAccessDeniedError("review order")
	}

	if o.Status() != order.Delivered {
		return errs.NewInvalidStateError("only delivered orders can be reviewed")
	}

	detail, err := o.DetailByID(cmd.OrderDetailID())
	if err != nil {
		return err
	}

	reviewRepo := uow.ReviewRepository()
	if _, err = reviewRepo.GetByOrderDetailID(ctx, detail.ID()); err == nil {
		return errs.NewInvalidStateError("order line is already reviewed")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	r, err := review.NewReview(cmd.ReviewID(), cmd.Principal().MemberID(), detail.ID(),
		detail.FruitID(), cmd.Rating(), cmd.Comment(), time.Now())
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
