package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// UpdateTrackingInfoCommandHandler handles attaching courier tracking details
// to a delivery. Tracking info never touches the delivery's lifecycle state.
type UpdateTrackingInfoCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateTrackingInfoCommandHandler creates a handler for tracking updates.
func NewUpdateTrackingInfoCommandHandler(
	uowFactory DeliveryUoWFactory) UpdateTrackingInfoCommandHandler {
	return UpdateTrackingInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the courier company and tracking number. Admin only.
func (h *UpdateTrackingInfoCommandHandler) Handle(ctx context.Context,
	cmd UpdateTrackingInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Principal().IsAdmin() {
		return errs.NewAccessDeniedError("update tracking info")
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

	if err = d.UpdateTrackingInfo(cmd.CourierCompany(), cmd.TrackingNumber()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
