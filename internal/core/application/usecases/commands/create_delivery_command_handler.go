package commands

import (
	"context"
	"errors"

	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles shipment creation for paid orders.
//
// An order gets exactly one delivery. Creating it moves the order from PAID
// to PREPARING in the same transaction, so the order and its shipment never
// disagree about whether fulfillment has started.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for shipment creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the delivery. Admin only. Fails when the order does not
// exist, is not in PAID status, or already has a delivery.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("create delivery")
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

	deliveryRepo := uow.DeliveryRepository()
	if _, err = deliveryRepo.GetByOrderID(ctx, o.ID()); err == nil {
		return errs.NewInvalidStateError("order already has a delivery")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = o.StartPreparing(); err != nil {
		return err
	}

	d, err := delivery.NewDelivery(cmd.DeliveryID(), o.ID(), cmd.Status(), cmd.Address(),
		cmd.CourierCompany(), cmd.TrackingNumber(), cmd.ExpectedDeliveryDate())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
