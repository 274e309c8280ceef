package commands

import (
	"context"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"
)

// CancelDeliveryCommandHandler handles delivery cancellation. The caller must
// own the order or be an administrator.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the delivery and its order, restoring reserved stock.
// Shipments already on the road or delivered cannot be cancelled.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsOwnerOrAdmin(o.MemberID()) {
		return errs.NewAccessDeniedError("cancel delivery")
	}

	if err = d.Cancel(); err != nil {
		return err
	}

	wasCancelled := o.Status() == order.Cancelled
	if !wasCancelled {
		if err = o.Cancel(); err != nil {
			return err
		}
		if err = restoreOrderStock(ctx, uow.FruitRepository(), o); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
