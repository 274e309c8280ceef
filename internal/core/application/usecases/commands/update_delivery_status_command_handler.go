package commands

import (
	"context"
	"time"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler handles shipment status changes and
// propagates them into the owning order.
//
// SHIPPING moves the order to SHIPPED, DELIVERED to DELIVERED, CANCELLED to
// CANCELLED with stock restored. The delivery and order always change in one
// transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status changes.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. Admin only. A delivery already in
// DELIVERED rejects any further change.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context,
	cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("update delivery status")
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

	if err = d.UpdateStatus(cmd.Status(), time.Now()); err != nil {
		return err
	}

	if orderStatus, ok := cmd.Status().OrderStatus(); ok {
		orderRepo := uow.OrderRepository()
		o, err := orderRepo.Get(ctx, d.OrderID())
		if err != nil {
			return err
		}

		wasCancelled := o.Status() == order.Cancelled
		if err = o.ForceStatus(orderStatus); err != nil {
			return err
		}

		if orderStatus == order.Cancelled && !wasCancelled {
			if err = restoreOrderStock(ctx, uow.FruitRepository(), o); err != nil {
				return err
			}
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
