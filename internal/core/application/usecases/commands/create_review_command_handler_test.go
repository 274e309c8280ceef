package commands_test

import (
	"testing"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/core/domain/model/review"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	fruitID := kernel.NewUUID()
	detail := orderDetail(t, fruitID, 2, "2.50")
	o := restoredOrder(t, memberID, order.Delivered, detail)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), o.ID(), detail.ID(), 5,
		"sweet and juicy", userPrincipal(t, memberID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByOrderDetailID", mock.Anything, detail.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderDetailID", detail.ID())).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := reviewRepo.Calls[1].Arguments.Get(1).(*review.Review)
	assert.Equal(t, 5, added.Rating())
	assert.True(t, added.FruitID().IsEqual(fruitID))
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_OrderNotDelivered(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	detail := orderDetail(t, kernel.NewUUID(), 1, "1.00")
	o := restoredOrder(t, memberID, order.Shipped, detail)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), o.ID(), detail.ID(), 4, "",
		userPrincipal(t, memberID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
}

func TestCreateReviewCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	detail := orderDetail(t, kernel.NewUUID(), 1, "1.00")
	o := restoredOrder(t, kernel.NewUUID(), order.Delivered, detail)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), o.ID(), detail.ID(), 4, "",
		userPrincipal(t, kernel.NewUUID()))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAccessDenied)
}

func TestCreateReviewCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	detail := orderDetail(t, kernel.NewUUID(), 1, "1.00")
	o := restoredOrder(t, memberID, order.Delivered, detail)

	existing, err := review.NewReview(kernel.NewUUID(), memberID, detail.ID(), detail.FruitID(),
		3, "", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), o.ID(), detail.ID(), 4, "",
		userPrincipal(t, memberID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByOrderDetailID", mock.Anything, detail.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidState)
	reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreateReviewCommand_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6} {
		_, err := commands.NewCreateReviewCommand(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), rating, "", userPrincipal(t, kernel.NewUUID()))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}
