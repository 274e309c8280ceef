package commands

import (
	"context"
)

// ExpireStaleOrdersCommandHandler cancels unpaid orders that outlived the
// payment window and returns their reserved stock to the catalog.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale order expiry.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every PENDING order placed before the cutoff and restores
// its stock, all in one transaction. Returns the number of expired orders.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context,
	cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllPendingBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	fruitRepo := uow.FruitRepository()
	for _, o := range stale {
		if err = o.Cancel(); err != nil {
			return 0, err
		}
		if err = restoreOrderStock(ctx, fruitRepo, o); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
