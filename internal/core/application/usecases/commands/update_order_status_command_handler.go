package commands

import (
	"context"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order status changes for both the
// customer cancellation path and the administrative override path.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change.
// Non-admin callers must own the order and may only request CANCELLED, which
// runs through the lifecycle guard. Admin callers may force any status.
// Whenever the order newly becomes CANCELLED, reserved stock is restored in
// the same transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context,
	cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	wasCancelled := o.Status() == order.Cancelled

	if cmd.Principal().IsAdmin() {
		if err = o.ForceStatus(cmd.Status()); err != nil {
			return err
		}
	} else {
		if !cmd.Principal().IsOwner(o.MemberID()) {
			return errs.NewAccessDeniedError("update order status")
		}
		if cmd.Status() != order.Cancelled {
			return errs.NewAccessDeniedError("set order status other than CANCELLED")
		}
		if err = o.Cancel(); err != nil {
			return err
		}
	}

	if o.Status() == order.Cancelled && !wasCancelled {
		if err = restoreOrderStock(ctx, uow.FruitRepository(), o); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
