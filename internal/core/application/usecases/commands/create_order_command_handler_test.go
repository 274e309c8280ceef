package commands_test

import (
	"errors"
	"testing"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/member"
	"fruitmall/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredMember(t *testing.T, id kernel.UUID) *member.Member {
	t.Helper()
	m, err := member.RestoreMember(id, "alice", "alice@example.com", "$2a$10$hash", "Alice",
		"", "", time.Now(), member.Bronze, []string{"ROLE_USER"})
	require.NoError(t, err)
	return m
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	fruitID := kernel.NewUUID()
	f := restoredFruit(t, fruitID, 10, "2.50")

	item, err := commands.NewOrderItem(fruitID, 4)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "CARD",
		userPrincipal(t, memberID), []commands.OrderItem{item})
	require.NoError(t, err)

	memberRepo := new(MockMemberRepository)
	fruitRepo := new(MockFruitRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", mock.Anything, memberID).Return(restoredMember(t, memberID), nil).Once(),
		uow.On("FruitRepository").Return(fruitRepo).Once(),
		fruitRepo.On("GetForUpdate", mock.Anything, fruitID).Return(f, nil).Once(),
		fruitRepo.On("Update", mock.Anything, f).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 6, f.StockQuantity())

	added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Pending, added.Status())
	assert.Equal(t, "CARD", added.PaymentMethod())
	want, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	assert.True(t, added.TotalPrice().IsEqual(want))

	orderRepo.AssertExpectations(t)
	fruitRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_OutOfStock(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	fruitID := kernel.NewUUID()
	f := restoredFruit(t, fruitID, 5, "2.50")

	item, err := commands.NewOrderItem(fruitID, 6)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "CARD",
		userPrincipal(t, memberID), []commands.OrderItem{item})
	require.NoError(t, err)

	memberRepo := new(MockMemberRepository)
	fruitRepo := new(MockFruitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", mock.Anything, memberID).Return(restoredMember(t, memberID), nil).Once(),
		uow.On("FruitRepository").Return(fruitRepo).Once(),
		fruitRepo.On("GetForUpdate", mock.Anything, fruitID).Return(f, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, fruit.ErrOutOfStock)

	assert.Equal(t, 5, f.StockQuantity())
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	item, err := commands.NewOrderItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "CARD",
		userPrincipal(t, kernel.NewUUID()), []commands.OrderItem{item})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
