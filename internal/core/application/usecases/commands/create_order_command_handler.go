package commands

import (
	"context"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// Stock is the contended resource here: every requested fruit is loaded with
// a row-level write lock, its stock decreased, and the order persisted in the
// same transaction. Either the order exists and all stock was taken, or
// nothing happened.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Verifies the member exists, reserves stock for every line under lock,
// snapshots unit prices, and creates the order in PENDING status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	memberRepo := uow.MemberRepository()
	buyer, err := memberRepo.Get(ctx, cmd.Principal().MemberID())
	if err != nil {
		return err
	}

	fruitRepo := uow.FruitRepository()
	details := make([]order.Detail, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		f, err := fruitRepo.GetForUpdate(ctx, item.FruitID())
		if err != nil {
			return err
		}

		if err = f.DecreaseStock(item.Quantity()); err != nil {
			return err
		}

		if err = fruitRepo.Update(ctx, f); err != nil {
			return err
		}

		detail, err := order.NewDetail(kernel.NewUUID(), f.ID(), item.Quantity(), f.Price())
		if err != nil {
			return err
		}
		details = append(details, detail)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), buyer.ID(), time.Now(),
		cmd.PaymentMethod(), details)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
