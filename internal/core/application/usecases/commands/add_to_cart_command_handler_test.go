package commands_test

import (
	"testing"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/cart"
	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCartCommandHandler_Handle_NewItem(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	fruitID := kernel.NewUUID()
	f := restoredFruit(t, fruitID, 10, "2.50")

	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), fruitID, 3,
		userPrincipal(t, memberID))
	require.NoError(t, err)

	fruitRepo := new(MockFruitRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FruitRepository").Return(fruitRepo).Once(),
		fruitRepo.On("Get", mock.Anything, fruitID).Return(f, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByMemberAndFruit", mock.Anything, memberID, fruitID).
			Return(nil, errs.NewObjectNotFoundError("fruitID", fruitID)).Once(),
		cartRepo.On("Add", mock.Anything, mock.AnythingOfType("*cart.CartItem")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := cartRepo.Calls[1].Arguments.Get(1).(*cart.CartItem)
	assert.Equal(t, 3, added.Quantity())
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_MergesExistingItem(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	fruitID := kernel.NewUUID()
	f := restoredFruit(t, fruitID, 10, "2.50")

	existing, err := cart.NewCartItem(kernel.NewUUID(), memberID, fruitID, 2)
	require.NoError(t, err)

	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), fruitID, 3,
		userPrincipal(t, memberID))
	require.NoError(t, err)

	fruitRepo := new(MockFruitRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FruitRepository").Return(fruitRepo).Once(),
		fruitRepo.On("Get", mock.Anything, fruitID).Return(f, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByMemberAndFruit", mock.Anything, memberID, fruitID).
			Return(existing, nil).Once(),
		cartRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 5, existing.Quantity())
	cartRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddToCartCommandHandler_Handle_MergedQuantityExceedsStock(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	fruitID := kernel.NewUUID()
	f := restoredFruit(t, fruitID, 4, "2.50")

	existing, err := cart.NewCartItem(kernel.NewUUID(), memberID, fruitID, 2)
	require.NoError(t, err)

	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), fruitID, 3,
		userPrincipal(t, memberID))
	require.NoError(t, err)

	fruitRepo := new(MockFruitRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FruitRepository").Return(fruitRepo).Once(),
		fruitRepo.On("Get", mock.Anything, fruitID).Return(f, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByMemberAndFruit", mock.Anything, memberID, fruitID).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), fruit.ErrOutOfStock)
	assert.Equal(t, 2, existing.Quantity())
}
