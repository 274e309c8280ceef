package commands

import (
	"context"

	"fruitmall/internal/pkg/errs"
)

// UpdateDeliveryAddressCommandHandler handles destination changes for
// shipments that have not left the warehouse.
type UpdateDeliveryAddressCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryAddressCommandHandler creates a handler for delivery destination updates.
func NewUpdateDeliveryAddressCommandHandler(
	uowFactory DeliveryUoWFactory) UpdateDeliveryAddressCommandHandler {
	return UpdateDeliveryAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the destination. The caller must own the order or be an
// administrator, and the delivery must still be in PREPARING.
func (h *UpdateDeliveryAddressCommandHandler) Handle(ctx context.Context,
	cmd UpdateDeliveryAddressCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsOwnerOrAdmin(o.MemberID()) {
		return errs.NewAccessDeniedError("update delivery address")
	}

	if err = d.UpdateAddress(cmd.Address()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
