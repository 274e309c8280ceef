package commands

import (
	"context"
	"time"

	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"
)

// UpdateDeliveryInfoCommandHandler handles combined shipment updates: a
// status change plus new schedule and courier details.
//
// The status change follows the same rules as a plain status update,
// including propagation into the owning order, so an info update that moves
// the shipment to SHIPPING still marks the order SHIPPED.
type UpdateDeliveryInfoCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryInfoCommandHandler creates a handler for delivery detail updates.
func NewUpdateDeliveryInfoCommandHandler(
	uowFactory DeliveryUoWFactory) UpdateDeliveryInfoCommandHandler {
	return UpdateDeliveryInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the update. Admin only. A delivery already in DELIVERED
// rejects any status other than DELIVERED.
func (h *UpdateDeliveryInfoCommandHandler) Handle(ctx context.Context,
	cmd UpdateDeliveryInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("update delivery info")
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

	if err = d.UpdateInfo(cmd.Status(), cmd.ExpectedDeliveryDate(), cmd.CourierCompany(),
		cmd.TrackingNumber(), time.Now()); err != nil {
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
