package commands_test

import (
	"testing"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredDelivery(t *testing.T, orderID kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, status, deliveryAddress(t),
		"", "", time.Now().AddDate(0, 0, 2), nil)
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ShippingPropagatesToOrder(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, kernel.NewUUID(), order.Preparing,
		orderDetail(t, kernel.NewUUID(), 1, "1.00"))
	d := restoredDelivery(t, o.ID(), delivery.Preparing)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Shipping,
		adminPrincipal(t))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.Shipping, d.Status())
	assert.Equal(t, order.Shipped, o.Status())
	uow.AssertNotCalled(t, "FruitRepository")
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredStampsDate(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, kernel.NewUUID(), order.Shipped,
		orderDetail(t, kernel.NewUUID(), 1, "1.00"))
	d := restoredDelivery(t, o.ID(), delivery.Shipping)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Delivered,
		adminPrincipal(t))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.Delivered, d.Status())
	assert.NotNil(t, d.ActualDeliveryDate())
	assert.Equal(t, order.Delivered, o.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredIsTerminal(t *testing.T) {
	ctx := t.Context()
	d := restoredDelivery(t, kernel.NewUUID(), delivery.Delivered)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Shipping,
		adminPrincipal(t))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
	assert.Equal(t, delivery.Delivered, d.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredAgainKeepsDate(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, kernel.NewUUID(), order.Delivered,
		orderDetail(t, kernel.NewUUID(), 1, "1.00"))
	deliveredAt := time.Now().AddDate(0, 0, -1)
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), o.ID(), delivery.Delivered,
		deliveryAddress(t), "", "", time.Now().AddDate(0, 0, -2), &deliveredAt)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Delivered,
		adminPrincipal(t))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, d.ActualDeliveryDate())
	assert.True(t, d.ActualDeliveryDate().Equal(deliveredAt))
}

func TestUpdateDeliveryStatusCommandHandler_Handle_CancelledRestoresStock(t *testing.T) {
	ctx := t.Context()
	fruitID := kernel.NewUUID()
	f := restoredFruit(t, fruitID, 1, "2.50")
	o := restoredOrder(t, kernel.NewUUID(), order.Preparing, orderDetail(t, fruitID, 2, "2.50"))
	d := restoredDelivery(t, o.ID(), delivery.Preparing)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Cancelled,
		adminPrincipal(t))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	fruitRepo := new(MockFruitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("FruitRepository").Return(fruitRepo).Once(),
		fruitRepo.On("GetForUpdate", mock.Anything, fruitID).Return(f, nil).Once(),
		fruitRepo.On("Update", mock.Anything, f).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.Cancelled, d.Status())
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, 3, f.StockQuantity())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_NonAdminDenied(t *testing.T) {
	cmd, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Shipping,
		userPrincipal(t, kernel.NewUUID()))
	require.NoError(t, err)

	h := commands.NewUpdateDeliveryStatusCommandHandler(new(MockDeliveryUoWFactory))
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrAccessDenied)
}
