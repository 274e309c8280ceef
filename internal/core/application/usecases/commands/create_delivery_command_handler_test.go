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

func createDeliveryCmd(t *testing.T, orderID kernel.UUID) commands.CreateDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), orderID, delivery.Preparing,
		time.Now().AddDate(0, 0, 2), "", "", deliveryAddress(t), adminPrincipal(t))
	require.NoError(t, err)
	return cmd
}

func TestNewCreateDeliveryCommand(t *testing.T) {
	t.Run("accepts an initial status and courier details", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
			delivery.Shipping, time.Now().AddDate(0, 0, 2), "FastShip", "TRACK-42",
			deliveryAddress(t), adminPrincipal(t))
		require.NoError(t, err)
		assert.Equal(t, delivery.Shipping, cmd.Status())
		assert.Equal(t, "FastShip", cmd.CourierCompany())
		assert.Equal(t, "TRACK-42", cmd.TrackingNumber())
	})

	t.Run("rejects an expected date in the past", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
			delivery.Preparing, time.Now().AddDate(0, 0, -1), "", "",
			deliveryAddress(t), adminPrincipal(t))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, "expectedDeliveryDate")
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
			delivery.UnknownStatus, time.Now().AddDate(0, 0, 2), "", "",
			deliveryAddress(t), adminPrincipal(t))
		require.Error(t, err)
	})

	t.Run("rejects an unconstructed address", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
			delivery.Preparing, time.Now().AddDate(0, 0, 2), "", "",
			delivery.Address{}, adminPrincipal(t))
		require.Error(t, err)
	})
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, kernel.NewUUID(), order.Paid,
		orderDetail(t, kernel.NewUUID(), 1, "1.00"))
	cmd := createDeliveryCmd(t, o.ID())

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", o.ID())).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Preparing, o.Status())

	added := deliveryRepo.Calls[1].Arguments.Get(1).(*delivery.Delivery)
	assert.Equal(t, delivery.Preparing, added.Status())
	assert.True(t, added.OrderID().IsEqual(o.ID()))
	assert.Equal(t, "Alice", added.Address().Recipient())
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_OrderNotPaid(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, kernel.NewUUID(), order.Pending,
		orderDetail(t, kernel.NewUUID(), 1, "1.00"))
	cmd := createDeliveryCmd(t, o.ID())

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", o.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Pending, o.Status())
}

func TestCreateDeliveryCommandHandler_Handle_DeliveryAlreadyExists(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, kernel.NewUUID(), order.Paid,
		orderDetail(t, kernel.NewUUID(), 1, "1.00"))
	cmd := createDeliveryCmd(t, o.ID())

	existing, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), delivery.Preparing,
		deliveryAddress(t), "", "", time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, o.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
}

func TestCreateDeliveryCommandHandler_Handle_NonAdminDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(),
		delivery.Preparing, time.Now().AddDate(0, 0, 2), "", "",
		deliveryAddress(t), userPrincipal(t, kernel.NewUUID()))
	require.NoError(t, err)

	h := commands.NewCreateDeliveryCommandHandler(new(MockDeliveryUoWFactory))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAccessDenied)
}
